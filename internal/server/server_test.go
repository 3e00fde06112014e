package server

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-dispatch/internal/config"
	"github.com/MKhiriev/go-dispatch/internal/handler"
	"github.com/MKhiriev/go-dispatch/internal/logger"
	"github.com/MKhiriev/go-dispatch/internal/router"
	"github.com/MKhiriev/go-dispatch/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/http2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func newTestRouter() *router.Router {
	return router.New().Use(
		router.Route("/hello").Get(func(models.Message) models.Message {
			return models.NewTextResponse(http.StatusOK, "hello")
		}),
	)
}

func newTestServer(t *testing.T, cfg config.Server) *server {
	t.Helper()

	handlers, err := handler.NewHandlers(newTestRouter(), cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	return srv.(*server)
}

// runInBackground starts s and returns a function stopping it and waiting
// for Run to return.
func runInBackground(t *testing.T, s *server) func() {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	return func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(10 * time.Second):
			t.Fatal("server did not stop")
		}
	}
}

func get(t *testing.T, client *http.Client, url string) (*http.Response, string) {
	t.Helper()

	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestNewServer_NoAddresses(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_BindError(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	cfg := config.Server{HTTPAddress: taken.Addr().String()}
	handlers, err := handler.NewHandlers(newTestRouter(), cfg, logger.Nop())
	require.NoError(t, err)

	_, err = NewServer(handlers, cfg, logger.Nop())

	assert.Error(t, err)
}

func TestNewServer_TLSLoadError(t *testing.T) {
	cfg := config.Server{
		HTTPAddress: "127.0.0.1:0",
		TLS:         config.TLS{CertFile: "/does/not/exist.pem", KeyFile: "/does/not/exist.key"},
	}
	handlers, err := handler.NewHandlers(newTestRouter(), cfg, logger.Nop())
	require.NoError(t, err)

	_, err = NewServer(handlers, cfg, logger.Nop())

	assert.ErrorIs(t, err, ErrTLSFileNotFound)
}

func TestServer_PlainHTTP(t *testing.T) {
	s := newTestServer(t, config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: 5 * time.Second})
	stop := runInBackground(t, s)
	defer stop()

	url := "http://" + s.httpServer.Addr().String() + "/hello"

	resp, body := get(t, http.DefaultClient, url)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello", body)
	assert.Equal(t, 1, resp.ProtoMajor)
}

func TestServer_H2C(t *testing.T) {
	s := newTestServer(t, config.Server{HTTPAddress: "127.0.0.1:0"})
	stop := runInBackground(t, s)
	defer stop()

	client := &http.Client{
		Transport: &http2.Transport{
			AllowHTTP: true,
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, network, addr)
			},
		},
	}

	resp, body := get(t, client, "http://"+s.httpServer.Addr().String()+"/hello")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello", body)
	assert.Equal(t, 2, resp.ProtoMajor)
}

func TestServer_HTTPS(t *testing.T) {
	c := newTestCert(t)
	c.encryptKey(t, "s3cret")

	s := newTestServer(t, config.Server{
		HTTPAddress: "127.0.0.1:0",
		TLS:         config.TLS{CertFile: c.certFile, KeyFile: c.keyFile, KeyPassword: "s3cret"},
	})
	stop := runInBackground(t, s)
	defer stop()

	client := &http.Client{
		Transport: &http.Transport{
			TLSClientConfig:   &tls.Config{RootCAs: c.pool(t), MinVersion: tls.VersionTLS12},
			ForceAttemptHTTP2: true,
		},
	}

	resp, body := get(t, client, "https://"+s.httpServer.Addr().String()+"/hello")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello", body)
	assert.Equal(t, 2, resp.ProtoMajor)
}

func TestServer_HTTPSRejectsOldTLS(t *testing.T) {
	c := newTestCert(t)
	s := newTestServer(t, config.Server{
		HTTPAddress: "127.0.0.1:0",
		TLS:         config.TLS{CertFile: c.certFile, KeyFile: c.keyFile},
	})
	stop := runInBackground(t, s)
	defer stop()

	client := &http.Client{
		Transport: &http.Transport{
			//nolint:gosec
			TLSClientConfig: &tls.Config{RootCAs: c.pool(t), MinVersion: tls.VersionTLS10, MaxVersion: tls.VersionTLS11},
		},
	}

	_, err := client.Get("https://" + s.httpServer.Addr().String() + "/hello")
	assert.Error(t, err)
}

func TestServer_GRPCHealth(t *testing.T) {
	s := newTestServer(t, config.Server{GRPCAddress: "127.0.0.1:0"})
	stop := runInBackground(t, s)

	conn, err := grpc.NewClient(s.gRPCServer.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	client := healthpb.NewHealthClient(conn)
	status := func() healthpb.HealthCheckResponse_ServingStatus {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{})
		if err != nil {
			return healthpb.HealthCheckResponse_UNKNOWN
		}
		return resp.GetStatus()
	}

	assert.Eventually(t, func() bool {
		return status() == healthpb.HealthCheckResponse_SERVING
	}, 5*time.Second, 20*time.Millisecond)

	stop()
}

func TestServer_ShutdownIsIdempotent(t *testing.T) {
	s := newTestServer(t, config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"})

	assert.NotPanics(t, func() {
		s.Shutdown()
		s.Shutdown()
	})
}

func TestServer_RunStopsWhenContextIsDone(t *testing.T) {
	s := newTestServer(t, config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"})
	addr := s.httpServer.Addr().String()

	stop := runInBackground(t, s)
	require.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}, 5*time.Second, 20*time.Millisecond)

	stop()

	_, err := net.DialTimeout("tcp", addr, time.Second)
	assert.Error(t, err)
}
