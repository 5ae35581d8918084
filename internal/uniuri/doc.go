// Package uniuri generates random strings from crypto/rand, used for generated credentials.
package uniuri
