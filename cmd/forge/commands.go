package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/neuroforge/forge/internal/banner"
	"github.com/neuroforge/forge/internal/config"
	"github.com/neuroforge/forge/internal/linkcheck"
	"github.com/neuroforge/forge/internal/notify"
	"github.com/neuroforge/forge/internal/runner"
	"github.com/neuroforge/forge/internal/scaffold"
	"github.com/neuroforge/forge/internal/schedule"
	"github.com/neuroforge/forge/internal/stats"
	"github.com/neuroforge/forge/internal/statstore"
	"github.com/neuroforge/forge/tui"
	"github.com/neuroforge/forge/web/api"
)

var (
	bannerTheme    string
	bannerBorder   string
	bannerAlign    string
	bannerWidth    int
	bannerGradient string

	statsJSON    bool
	statsSave    bool
	statsHistory int

	initManifest string

	linksTimeout      int
	linksConcurrency  int
	linksSkipExternal bool
	linksWatch        bool

	servePort int
	servePath string
)

func init() {
	bannerCmd := &cobra.Command{
		Use:   "banner TITLE [LINE...]",
		Short: "Render a themed banner",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runBanner,
	}
	bannerCmd.Flags().StringVar(&bannerTheme, "theme", "", "banner theme")
	bannerCmd.Flags().StringVar(&bannerBorder, "border", "", "border style")
	bannerCmd.Flags().StringVar(&bannerAlign, "align", "left", "content alignment (left, center, right)")
	bannerCmd.Flags().IntVar(&bannerWidth, "width", 0, "banner width")
	bannerCmd.Flags().StringVar(&bannerGradient, "gradient", "", "title gradient as START:END hex colors")
	rootCmd.AddCommand(bannerCmd)

	statsCmd := &cobra.Command{
		Use:   "stats [PATH]",
		Short: "Summarize repository file and line counts",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStats,
	}
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "print the snapshot as JSON")
	statsCmd.Flags().BoolVar(&statsSave, "save", false, "write project_stats.json and record the snapshot")
	statsCmd.Flags().IntVar(&statsHistory, "history", 0, "show the last N recorded snapshots instead")
	rootCmd.AddCommand(statsCmd)

	initCmd := &cobra.Command{
		Use:   "init [PATH]",
		Short: "Scaffold a monorepo skeleton",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInit,
	}
	initCmd.Flags().StringVar(&initManifest, "manifest", "", "YAML manifest describing the projects to generate")
	rootCmd.AddCommand(initCmd)

	linksCmd := &cobra.Command{
		Use:   "links [PATH]",
		Short: "Validate links in markdown documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLinks,
	}
	linksCmd.Flags().IntVar(&linksTimeout, "timeout", 0, "external link timeout in seconds")
	linksCmd.Flags().IntVar(&linksConcurrency, "concurrency", 0, "external link check concurrency")
	linksCmd.Flags().BoolVar(&linksSkipExternal, "skip-external", false, "only validate relative links")
	linksCmd.Flags().BoolVar(&linksWatch, "watch", false, "re-validate when markdown files change")
	rootCmd.AddCommand(linksCmd)

	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse banner themes and borders interactively",
		RunE:  runCatalog,
	}
	rootCmd.AddCommand(catalogCmd)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the stats API and record scheduled snapshots",
		RunE:  runServe,
	}
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on")
	serveCmd.Flags().StringVar(&servePath, "path", ".", "repository to snapshot")
	rootCmd.AddCommand(serveCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Print the placeholder run result",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Result: %s\n", runner.Run())
			return nil
		},
	}
	rootCmd.AddCommand(runCmd)
}

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.FindLocalConfig()
	}
	if path == "" {
		path = config.DefaultConfigPath()
	}
	return config.Load(path)
}

func runBanner(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	theme := cfg.Banner.Theme
	if bannerTheme != "" {
		theme = bannerTheme
	}
	border := cfg.Banner.Border
	if bannerBorder != "" {
		border = bannerBorder
	}
	width := cfg.Banner.Width
	if bannerWidth > 0 {
		width = bannerWidth
	}

	title := args[0]
	if bannerGradient != "" {
		start, end, ok := strings.Cut(bannerGradient, ":")
		if !ok {
			return fmt.Errorf("gradient must be START:END, got %q", bannerGradient)
		}
		title, err = banner.Gradient(title, start, end)
		if err != nil {
			return err
		}
	}

	b := banner.New(title).
		Theme(theme).
		Border(border).
		Width(width).
		Align(banner.ParseAlignment(bannerAlign))
	for _, line := range args[1:] {
		b.AddLine(line)
	}

	fmt.Println(b.Render())
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if statsHistory > 0 {
		return showHistory(cfg, statsHistory)
	}

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	snap, err := stats.Collect(root, cfg.General.IgnoreDirs)
	if err != nil {
		return err
	}

	if statsJSON {
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	} else {
		snap.Report(os.Stdout)
	}

	if statsSave {
		outPath := filepath.Join(root, "project_stats.json")
		if err := snap.WriteJSON(outPath); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "stats saved to %s\n", outPath)

		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		absRoot, err := filepath.Abs(root)
		if err != nil {
			return err
		}
		rec, err := store.SaveSnapshot(absRoot, snap)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "snapshot recorded as %s\n", rec.ID)
	}

	return nil
}

func showHistory(cfg *config.Config, limit int) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.ListSnapshots(limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No snapshots recorded yet. Run: forge stats --save")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tREPO\tFILES\tLINES\tID")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
			rec.CreatedAt.Format("2006-01-02 15:04"),
			rec.RepoPath,
			rec.Snapshot.TotalFiles,
			rec.Snapshot.TotalLines,
			rec.ID,
		)
	}
	return w.Flush()
}

func openStore(cfg *config.Config) (*statstore.Store, error) {
	dbPath := cfg.General.DatabasePath
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, err
	}
	return statstore.New(dbPath)
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	var manifest *scaffold.Manifest
	if initManifest != "" {
		manifest, err = scaffold.LoadManifest(initManifest)
		if err != nil {
			return err
		}
	} else {
		manifest = scaffold.DefaultManifest()
		manifest.Author = cfg.Scaffold.Author
		manifest.License = cfg.Scaffold.License
		if len(cfg.Scaffold.Projects) > 0 {
			manifest.Projects = nil
			for _, lang := range cfg.Scaffold.Projects {
				manifest.Projects = append(manifest.Projects, scaffold.Project{
					Name:     lang + "_project",
					Language: lang,
				})
			}
		}
	}

	rep, err := scaffold.Init(root, manifest)
	if err != nil {
		return err
	}

	for _, path := range rep.Created {
		fmt.Printf("created  %s\n", path)
	}
	for _, path := range rep.Skipped {
		fmt.Printf("exists   %s\n", path)
	}
	fmt.Printf("\n%d created, %d already present\n", len(rep.Created), len(rep.Skipped))
	return nil
}

func runLinks(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	opts := linkcheck.Options{
		Timeout:      time.Duration(cfg.LinkCheck.TimeoutSeconds) * time.Second,
		Concurrency:  cfg.LinkCheck.Concurrency,
		SkipExternal: cfg.LinkCheck.SkipExternal,
	}
	if linksTimeout > 0 {
		opts.Timeout = time.Duration(linksTimeout) * time.Second
	}
	if linksConcurrency > 0 {
		opts.Concurrency = linksConcurrency
	}
	if linksSkipExternal {
		opts.SkipExternal = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ok, err := checkAndPrint(ctx, root, opts)
	if err != nil {
		return err
	}

	if !linksWatch {
		if !ok {
			os.Exit(1)
		}
		return nil
	}

	notifier := notify.FromConfig(cfg.Notifications.Desktop)
	watcher, err := linkcheck.NewWatcher(root, func(changed []string) {
		fmt.Fprintf(os.Stderr, "\n%d file(s) changed, re-checking...\n", len(changed))
		ok, err := checkAndPrint(ctx, root, opts)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		if !ok {
			notifier.Send(notify.Notification{
				Title:   "forge links",
				Message: "broken links detected",
				Type:    notify.NotifyError,
			})
		}
	})
	if err != nil {
		return err
	}
	defer watcher.Stop()

	watcher.Start(ctx)
	fmt.Fprintln(os.Stderr, "watching for markdown changes (ctrl-c to stop)")
	<-ctx.Done()
	return nil
}

func checkAndPrint(ctx context.Context, root string, opts linkcheck.Options) (bool, error) {
	res, err := linkcheck.Check(ctx, root, opts)
	if err != nil {
		return false, err
	}

	for _, issue := range res.Issues {
		fmt.Printf("%s:%d: %s (%s)\n", issue.File, issue.Line, issue.Link, issue.Reason)
	}
	fmt.Printf("%d files, %d links checked, %d broken\n",
		res.FilesScanned, res.LinksChecked, len(res.Issues))
	return res.OK(), nil
}

func runCatalog(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(tui.NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	port := cfg.Web.Port
	if servePort > 0 {
		port = servePort
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	repoPath, err := filepath.Abs(servePath)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Web.Host, port)
	server := api.NewServer(store, addr)
	notifier := notify.FromConfig(cfg.Notifications.Desktop)

	snapshotJob := func() {
		snap, err := stats.Collect(repoPath, cfg.General.IgnoreDirs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "snapshot failed: %v\n", err)
			return
		}
		rec, err := store.SaveSnapshot(repoPath, snap)
		if err != nil {
			fmt.Fprintf(os.Stderr, "recording snapshot failed: %v\n", err)
			return
		}
		server.Broadcast(api.Event{Type: "snapshot", Data: rec})
		notifier.Send(notify.Notification{
			Title:   "forge serve",
			Message: fmt.Sprintf("snapshot recorded: %d files, %d lines", snap.TotalFiles, snap.TotalLines),
			Type:    notify.NotifySuccess,
		})
	}

	scheduler, err := schedule.New(cfg.Web.SnapshotCron, snapshotJob)
	if err != nil {
		return err
	}
	scheduler.Start()
	defer scheduler.Stop()

	fmt.Fprintf(os.Stderr, "serving on http://%s (next snapshot %s)\n",
		addr, scheduler.NextRun().Format(time.RFC3339))
	return server.Start()
}
