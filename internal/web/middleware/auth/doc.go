// Package auth provides the actor middleware for the web application.
//
// Authentication happens in front of the service: the identity proxy sets a header
// (Webserver.ActorHeader, X-Actor-ID by default) carrying the id of the authenticated user.
// The middleware loads that user and stores it in fiber.Locals for the handlers.
//
// The middleware performs the following tasks:
//   - Rejects malformed or unknown actor ids with 422
//   - Adds the current user to fiber.Locals (CurrentUser) and its id for the access log
//   - Leaves requests without the header anonymous; the auth service rejects them where an actor is required
//
// Usage:
//
//	app.Use(authmiddleware.New(cfg.Webserver.ActorHeader, authService))
package auth
