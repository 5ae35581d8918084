package fiber_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "github.com/projecthub/projecthub/internal/logger/adapter/fiber"

	"github.com/projecthub/projecthub/internal/logger"
)

// expectedLoggerJSONFormat implements loggers default json format.
type expectedLoggerJSONFormat struct {
	IP            net.IP    `json:"IP"`
	Status        int       `json:"status"`
	XPerformance  float32   `json:"X-Performance"`
	URI           string    `json:"URI"`
	Method        string    `json:"method"`
	Host          string    `json:"host"`
	XForwardedFor string    `json:"X-Forwarded-For"`
	UserAgent     string    `json:"User-Agent"`
	Actor         uint64    `json:"actor"`
	Error         string    `json:"error"`
	Time          time.Time `json:"time"`
}

func consoleConfig() adapter.Config {
	return adapter.Config{
		Config: logger.Log{
			EnableAccessLogToConsole: true,
			DisableCheckAlive:        true,
			Console:                  logger.Console{Enabled: true},
		},
		CheckAliveURI: "/checkalive",
	}
}

func TestNew(t *testing.T) {
	type arguments struct {
		config     adapter.Config
		targetPath string
	}

	tests := []struct {
		name   string
		args   arguments
		output *expectedLoggerJSONFormat
	}{
		{
			name: "empty no output at all",
			args: arguments{targetPath: "/"},
		},
		{
			name: "get / log to console json",
			args: arguments{targetPath: "/", config: consoleConfig()},
			output: &expectedLoggerJSONFormat{
				IP:     net.ParseIP("0.0.0.0"),
				Status: fiber.StatusOK,
				URI:    "/",
				Method: fiber.MethodGet,
				Host:   "example.com",
			},
		},
		{
			name: "get log with params",
			args: arguments{targetPath: "/?test=123", config: consoleConfig()},
			output: &expectedLoggerJSONFormat{
				IP:     net.ParseIP("0.0.0.0"),
				Status: fiber.StatusOK,
				URI:    "/?test=123",
				Method: fiber.MethodGet,
				Host:   "example.com",
			},
		},
		{
			name: "get multi slash 2 and params",
			args: arguments{targetPath: "/no_path//?test=123", config: consoleConfig()},
			output: &expectedLoggerJSONFormat{
				IP:     net.ParseIP("0.0.0.0"),
				Status: fiber.StatusNotFound,
				URI:    "/no_path//?test=123",
				Method: fiber.MethodGet,
				Host:   "example.com",
			},
		},
		{
			name: "actor from locals",
			args: arguments{targetPath: "/actor", config: consoleConfig()},
			output: &expectedLoggerJSONFormat{
				IP:     net.ParseIP("0.0.0.0"),
				Status: fiber.StatusOK,
				URI:    "/actor",
				Method: fiber.MethodGet,
				Host:   "example.com",
				Actor:  42,
			},
		},
		{
			name: "handler error rendered by error handler",
			args: arguments{targetPath: "/fail", config: consoleConfig()},
			output: &expectedLoggerJSONFormat{
				IP:     net.ParseIP("0.0.0.0"),
				Status: fiber.StatusTeapot,
				URI:    "/fail",
				Method: fiber.MethodGet,
				Host:   "example.com",
				Error:  "short and stout",
			},
		},
		{
			name: "check alive is not logged",
			args: arguments{targetPath: "/checkalive", config: consoleConfig()},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// use test helper func for testing this config
			output, err := testMiddlewareHelper(t, tt.args.targetPath, tt.args.config)
			require.NoError(t, err)

			if tt.output == nil {
				assert.Empty(t, output)

				return
			}

			require.NotEmpty(t, output)

			var decodedOutput expectedLoggerJSONFormat
			require.NoError(t, json.Unmarshal([]byte(output), &decodedOutput))

			assert.Equal(t, tt.output.Host, decodedOutput.Host)
			assert.Equal(t, tt.output.Method, decodedOutput.Method)
			assert.Equal(t, tt.output.Status, decodedOutput.Status)
			assert.Equal(t, tt.output.IP, decodedOutput.IP)
			assert.Equal(t, tt.output.URI, decodedOutput.URI)
			assert.Equal(t, tt.output.Actor, decodedOutput.Actor)
			assert.Equal(t, tt.output.Error, decodedOutput.Error)
		})
	}
}

func testMiddlewareHelper(t *testing.T, targetPath string, adapterConfig adapter.Config) (string, error) {
	t.Helper()

	stdout := os.Stdout
	stderr := os.Stderr

	// capture stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	os.Stderr = w

	// create new fiber app
	app := fiber.New(fiber.Config{
		CaseSensitive: true,
		Immutable:     true,
	})

	// use logger
	app.Use(adapter.New(adapterConfig))

	// create minimal endpoints
	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("hello test")
	})
	app.Get("/checkalive", func(c fiber.Ctx) error {
		return c.SendString("OK")
	})
	app.Get("/actor", func(c fiber.Ctx) error {
		c.Locals(adapter.LocalsActorID, uint64(42))

		return c.SendString("hello actor")
	})
	app.Get("/fail", func(_ fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, targetPath, nil))
	if err != nil {
		_ = w.Close()
		os.Stdout = stdout
		os.Stderr = stderr

		return "", err
	}

	outC := make(chan string)
	// copy the output in a separate goroutine so printing can't block indefinitely
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)

		outC <- buf.String()
	}()

	// back to normal state
	_ = w.Close()
	os.Stdout = stdout // restoring the real stdout
	os.Stderr = stderr // restoring the real stderr
	out := <-outC

	return out, nil
}
