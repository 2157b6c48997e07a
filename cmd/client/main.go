package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-photo-album/internal/adapter"
	"github.com/MKhiriev/go-photo-album/internal/client"
	"github.com/MKhiriev/go-photo-album/internal/config"
	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/internal/service"
	"github.com/MKhiriev/go-photo-album/internal/store"
	"github.com/MKhiriev/go-photo-album/internal/tui"
	"github.com/MKhiriev/go-photo-album/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// flags collects the persistent command-line overrides.
type flags struct {
	configPath  string
	serverURL   string
	localDriver string
	localDSN    string
	demoUserID  string
	logPath     string
}

func (f flags) overrides() *config.StructuredConfig {
	cfg := &config.StructuredConfig{FilePath: f.configPath}
	cfg.Adapter.HTTPAddress = f.serverURL
	cfg.Storage.Local.Driver = f.localDriver
	cfg.Storage.Local.DSN = f.localDSN
	cfg.App.DemoUserID = f.demoUserID
	return cfg
}

// runtime holds everything a command needs once configuration is loaded.
type runtime struct {
	cfg      *config.ClientConfig
	log      *logger.Logger
	storages *store.ClientStorages
	services *service.ClientServices
}

func newRuntime(ctx context.Context, f flags) (*runtime, error) {
	log := logger.NewClientLogger("photo-album-client", f.logPath)

	cfg, err := config.GetClientConfig(f.overrides())
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	return &runtime{
		cfg:      cfg,
		log:      log,
		storages: storages,
		services: service.NewClientServices(storages, serverAdapter, *cfg, log),
	}, nil
}

func (r *runtime) Close() {
	if err := r.storages.Close(); err != nil {
		r.log.Err(err).Msg("error closing local storage")
	}
}

// restore loads the saved session and fails when nobody is signed in.
func (r *runtime) restore(ctx context.Context) (models.SessionUser, error) {
	if err := r.services.Session.Restore(ctx); err != nil {
		return models.SessionUser{}, err
	}
	user, ok := r.services.Session.User()
	if !ok {
		return models.SessionUser{}, service.ErrNotAuthenticated
	}
	return user, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:           "photo-album",
		Short:         "Terminal client of the photo album",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), f)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "path to a JSON or YAML config file")
	pf.StringVarP(&f.serverURL, "server", "s", "", "base URL of the API server")
	pf.StringVar(&f.localDriver, "store", "", "local store driver: sqlite, bolt or memory")
	pf.StringVar(&f.localDSN, "store-path", "", "file path of the local store")
	pf.StringVar(&f.demoUserID, "demo-user", "", "user id whose albums stay in local storage")
	pf.StringVar(&f.logPath, "log-file", "", "log file path")

	root.AddCommand(
		newLoginCommand(&f),
		newAlbumsCommand(&f),
		newUploadCommand(&f),
		newUsageCommand(&f),
		newClearDataCommand(&f),
		newLogoutCommand(&f),
		newVersionCommand(),
	)
	return root
}

func runTUI(ctx context.Context, f flags) error {
	rt, err := newRuntime(ctx, f)
	if err != nil {
		return err
	}
	defer rt.Close()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui := tui.New(rt.services, buildInfo, rt.log)

	return client.NewApp(rt.services, ui, rt.log).Run(ctx)
}

func newLoginCommand(f *flags) *cobra.Command {
	var profile models.PlatformProfile

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with a LINE profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := newRuntime(cmd.Context(), *f)
			if err != nil {
				return err
			}
			defer rt.Close()

			user, err := rt.services.Session.LoginWithPlatformProfile(cmd.Context(), profile)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s (%s)\n", user.DisplayName, user.ID)
			if rt.cfg.App.FrontendURL != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "web: %s\n", rt.cfg.App.FrontendURL)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&profile.UserID, "user-id", "", "LINE user id")
	cmd.Flags().StringVar(&profile.DisplayName, "name", "", "display name")
	cmd.Flags().StringVar(&profile.PictureURL, "picture", "", "profile picture URL")
	_ = cmd.MarkFlagRequired("user-id")
	return cmd
}

func newAlbumsCommand(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "albums",
		Short: "List the albums of the signed in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := newRuntime(cmd.Context(), *f)
			if err != nil {
				return err
			}
			defer rt.Close()

			if _, err := rt.restore(cmd.Context()); err != nil {
				return err
			}
			albums, err := rt.services.AlbumService.ListAlbums(cmd.Context())
			if err != nil {
				return err
			}
			for _, a := range albums {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\n", a.ID, a.Title, a.PhotoCount)
			}
			return nil
		},
	}
}

func newUploadCommand(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <album-id> <file>...",
		Short: "Compress images and add them to an album",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd.Context(), *f)
			if err != nil {
				return err
			}
			defer rt.Close()

			if _, err := rt.restore(cmd.Context()); err != nil {
				return err
			}

			files := make([]service.UploadFile, 0, len(args)-1)
			for _, path := range args[1:] {
				files = append(files, service.UploadFromPath(path))
			}

			photos, err := rt.services.PhotoService.Upload(cmd.Context(), args[0], files)
			if err != nil {
				return err
			}
			for _, p := range photos {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%dx%d\t%d bytes\n", p.ID, p.Filename, p.Width, p.Height, p.FileSize)
			}
			return nil
		},
	}
}

func newUsageCommand(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: "Show how much local storage the client uses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := newRuntime(cmd.Context(), *f)
			if err != nil {
				return err
			}
			defer rt.Close()

			usage, err := rt.services.StorageUsage.EstimateUsage(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "used: %d bytes\n", usage.UsedBytes)
			if usage.QuotaBytes > 0 {
				fmt.Fprintf(out, "quota: %d bytes (%.1f%%)\n", usage.QuotaBytes, usage.UsagePercentage())
			}
			if usage.Estimated {
				fmt.Fprintln(out, "estimated")
			}
			if !usage.IsAvailable {
				fmt.Fprintln(out, "storage is nearly full")
			}
			return nil
		},
	}
}

func newClearDataCommand(f *flags) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear-data",
		Short: "Remove every local album, photo and slideshow setting",
		Long:  "Remove every local album, photo and slideshow setting. The saved session is kept.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("refusing to delete local data without --yes")
			}

			rt, err := newRuntime(cmd.Context(), *f)
			if err != nil {
				return err
			}
			defer rt.Close()

			removed, err := rt.services.StorageUsage.ClearLocalData(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d entries\n", removed)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the deletion")
	return cmd
}

func newLogoutCommand(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := newRuntime(cmd.Context(), *f)
			if err != nil {
				return err
			}
			defer rt.Close()

			if _, err := rt.restore(cmd.Context()); err != nil {
				return err
			}
			if err := rt.services.Session.Logout(cmd.Context()).Wait(cmd.Context()); err != nil {
				rt.log.Warn().Err(err).Msg("server logout failed, local session removed")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		},
	}
}
