package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"petra/internal/common/fsutil"
	"petra/internal/config"
	"petra/internal/content"
	"petra/internal/httpapi"
	"petra/internal/predict"
	"petra/internal/session"
)

const shutdownGrace = 5 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	var (
		addr         string
		inferenceURL string
		assetsDir    string
		mapboxToken  string
	)
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Run the dashboard HTTP server",
		Example: "  petra serve --addr :8501 --inference-url http://127.0.0.1:8000",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}
			f := cmd.Flags()
			if f.Changed("addr") {
				cfg.Addr = addr
			}
			if f.Changed("inference-url") {
				cfg.InferenceURL = inferenceURL
			}
			if f.Changed("assets-dir") {
				cfg.AssetsDir = assetsDir
			}
			if f.Changed("mapbox-token") {
				cfg.MapboxToken = mapboxToken
			}
			if err := validate(cfg); err != nil {
				return err
			}
			log := opts.logger(cfg)

			ln, err := net.Listen("tcp", cfg.Addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", cfg.Addr, err)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, ln, cfg, log)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "HTTP listen address (defaults PETRA_ADDR)")
	cmd.Flags().StringVar(&inferenceURL, "inference-url", config.DefaultInferenceURL, "Inference service base URL (defaults FASTAPI_URL)")
	cmd.Flags().StringVar(&assetsDir, "assets-dir", config.DefaultAssetsDir, "Directory served under /assets")
	cmd.Flags().StringVar(&mapboxToken, "mapbox-token", "", "Mapbox access token (defaults MAPBOX_API_KEY)")
	return cmd
}

// serve runs the dashboard on ln until ctx is canceled, then drains
// in-flight requests for up to shutdownGrace.
func serve(ctx context.Context, ln net.Listener, cfg config.Config, log zerolog.Logger) error {
	sessions, err := session.NewStore(session.Options{Size: cfg.SessionCacheSize, SecureCookie: cfg.SecureCookie})
	if err != nil {
		return err
	}
	client := predict.New(predict.Options{
		Endpoint: cfg.InferenceURL,
		Path:     cfg.PredictPath,
		Timeout:  cfg.PredictTimeout(),
		Logger:   &log,
	})

	if !fsutil.IsDir(cfg.AssetsDir) {
		log.Warn().Str("assets", cfg.AssetsDir).Msg("assets directory not found; splash video and sample images will 404")
	} else if missing := fsutil.MissingAssets(cfg.AssetsDir, content.AssetNames()...); len(missing) > 0 {
		log.Warn().Str("assets", cfg.AssetsDir).Strs("missing", missing).Msg("assets incomplete")
	}

	httpapi.SetLogger(log)
	httpapi.SetMaxUploadBytes(cfg.MaxUploadBytes())
	httpapi.SetCORSOptions(cfg.CORS.Enabled, cfg.CORS.AllowedOrigins, cfg.CORS.AllowedMethods, cfg.CORS.AllowedHeaders)
	httpapi.SetBaseContext(ctx)

	srv := &http.Server{
		Handler: httpapi.NewMux(httpapi.Deps{
			Predictor:   client,
			Sessions:    sessions,
			AssetsDir:   cfg.AssetsDir,
			MapboxToken: cfg.MapboxToken,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().
			Str("addr", ln.Addr().String()).
			Str("inference", client.URL()).
			Str("assets", cfg.AssetsDir).
			Bool("map", cfg.MapboxToken != "").
			Msg("petra listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			log.Warn().Err(err).Msg("graceful shutdown")
			return err
		}
		log.Info().Msg("petra stopped")
		return nil
	})
	return g.Wait()
}
