package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"github.com/MrJJimenez/jobagg/internal/config"
	"github.com/MrJJimenez/jobagg/internal/engine"
	"github.com/MrJJimenez/jobagg/internal/export"
	"github.com/MrJJimenez/jobagg/internal/models"
	"github.com/MrJJimenez/jobagg/internal/network"
	"github.com/MrJJimenez/jobagg/internal/provider"
)

type SearchCmd struct {
	Skills    string `arg:"" help:"Skills to search for (comma-separated)."`
	Levels    string `help:"Seniority terms (comma-separated)."`
	Locations string `help:"Cities to scope the search to (comma-separated)." env:"JOBAGG_DEFAULT_LOCATIONS"`
	Countries string `help:"Allowed countries (comma-separated; required unless --remote)." env:"JOBAGG_DEFAULT_COUNTRIES"`
	Days      int    `help:"Listings posted within the last N days."`
	Remote    bool   `help:"Remote-only search; ignores locations and countries."`
	Page      int    `help:"Result page (1-based)." default:"1"`
	PageSize  int    `help:"Results per page."`
	Format    string `help:"Output format: csv, json, md, tsv, table." enum:",csv,json,md,tsv,table" default:""`
	Links     string `help:"Table link display: short or full." enum:"short,full" default:"full"`
	Output    string `name:"output" short:"o" help:"Write output to a file."`
	Proxies   string `help:"Comma-separated proxy URLs." env:"JOBAGG_PROXIES"`
}

func (s *SearchCmd) Run(ctx *Context) error {
	req := models.SearchRequest{
		Skills:     splitCSV(s.Skills),
		Levels:     splitCSV(s.Levels),
		Locations:  splitCSV(s.Locations),
		Countries:  splitCSV(s.Countries),
		PostedDays: defaultInt(s.Days, ctx.Config.DefaultDays),
		IsRemote:   s.Remote,
		Page:       s.Page,
		PageSize:   defaultInt(s.PageSize, ctx.Config.DefaultPageSize),
	}
	if len(req.Countries) == 0 {
		req.Countries = ctx.Config.DefaultCountries
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		return err
	}

	eng, err := BuildEngine(ctx, s.Proxies)
	if err != nil {
		return err
	}

	stopIndicator := startSearchIndicator(ctx)
	result, err := eng.Search(context.Background(), req)
	if stopIndicator != nil {
		stopIndicator()
	}
	if err != nil {
		return err
	}

	if result.Fallback {
		ctx.UI.Warnf("No listings matched %s; showing country-wide results instead.",
			strings.Join(req.Cities(), ", "))
	}

	pageJobs := engine.PageSlice(result.Jobs, req.Page, req.PageSize)

	format, err := resolveFormat(ctx, s.Format, s.Output)
	if err != nil {
		return err
	}

	writer := ctx.Out
	var file *os.File
	if s.Output != "" {
		file, err = os.Create(s.Output)
		if err != nil {
			return err
		}
		defer file.Close()
		writer = file
	}

	colorEnabled := ctx.UI != nil && ctx.UI.ColorEnabled
	hyperlinks := colorEnabled && isTTY(writer)
	linkStyle := export.LinkStyleFull
	if strings.EqualFold(s.Links, string(export.LinkStyleShort)) {
		linkStyle = export.LinkStyleShort
	}
	if err := export.WriteJobs(writer, pageJobs, format, export.WriteOptions{
		ColorEnabled: colorEnabled,
		Hyperlinks:   hyperlinks,
		LinkStyle:    linkStyle,
	}); err != nil {
		return err
	}

	printSearchSummary(ctx, result, req)
	return nil
}

// BuildEngine wires the shared transport, provider registry, and
// aggregation engine from the loaded configuration.
func BuildEngine(ctx *Context, proxiesFlag string) (*engine.Engine, error) {
	proxies, err := config.LoadProxies(proxiesFlag)
	if err != nil {
		return nil, err
	}

	var rotator *network.Rotator
	if len(proxies) > 0 {
		rotator, err = network.NewRotator(proxies, 10*time.Minute)
		if err != nil {
			return nil, err
		}
	}

	timeout := time.Duration(ctx.Config.FetchTimeoutSecs) * time.Second
	client, err := network.NewClient(rotator, timeout)
	if err != nil {
		return nil, err
	}

	registry := provider.NewRegistry(client, provider.Credentials{
		RapidAPIKey:  ctx.Config.RapidAPIKey,
		JoobleKey:    ctx.Config.JoobleKey,
		AdzunaAppID:  ctx.Config.AdzunaAppID,
		AdzunaAppKey: ctx.Config.AdzunaAppKey,
		USAJobsEmail: ctx.Config.USAJobsEmail,
		USAJobsKey:   ctx.Config.USAJobsKey,
	})

	return engine.New(registry,
		engine.WithLogger(ctx.Logger),
		engine.WithFetchTimeout(timeout),
	), nil
}

func printSearchSummary(ctx *Context, result *engine.Result, req models.SearchRequest) {
	if ctx == nil || ctx.Err == nil {
		return
	}

	counts := engine.CountBySource(result.Jobs)
	if len(counts) == 0 {
		fmt.Fprintf(ctx.Err, "summary: jobs=0 by_source=none\n")
		return
	}

	parts := make([]string, 0, len(counts))
	for _, count := range counts {
		parts = append(parts, fmt.Sprintf("%s:%d", count.Source, count.Total))
	}
	fmt.Fprintf(ctx.Err, "summary: jobs=%d page=%d/%d by_source=%s\n",
		len(result.Jobs), req.Page, totalPages(len(result.Jobs), req.PageSize), strings.Join(parts, ", "))
}

func totalPages(total, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

func resolveFormat(ctx *Context, flagValue string, outputPath string) (export.Format, error) {
	if ctx.JSONOutput {
		return export.FormatJSON, nil
	}
	if ctx.PlainText {
		return export.FormatTSV, nil
	}
	if flagValue != "" {
		return parseFormat(flagValue)
	}
	if outputPath != "" {
		return export.FormatCSV, nil
	}
	if isTTY(ctx.Out) {
		return export.FormatTable, nil
	}
	return export.FormatCSV, nil
}

func parseFormat(value string) (export.Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "csv":
		return export.FormatCSV, nil
	case "json":
		return export.FormatJSON, nil
	case "md", "markdown":
		return export.FormatMarkdown, nil
	case "tsv":
		return export.FormatTSV, nil
	case "table", "":
		return export.FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format: %s", value)
	}
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

func defaultInt(value, fallback int) int {
	if value == 0 {
		return fallback
	}
	return value
}

func isTTY(out io.Writer) bool {
	output := termenv.NewOutput(out)
	return output.ColorProfile() != termenv.Ascii
}

func startSearchIndicator(ctx *Context) func() {
	if ctx == nil || ctx.Err == nil || ctx.UI == nil {
		return nil
	}
	if !isTTY(ctx.Err) {
		return nil
	}

	done := make(chan struct{})
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)
		start := time.Now()
		frames := []string{"|", "/", "-", "\\"}
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		index := 0

		for {
			select {
			case <-done:
				fmt.Fprint(ctx.Err, "\r\033[2K")
				return
			case <-ticker.C:
				seconds := int(time.Since(start).Seconds())
				frame := frames[index%len(frames)]
				fmt.Fprintf(ctx.Err, "\r\033[2KSearching... %ds %s", seconds, frame)
				index++
			}
		}
	}()

	return func() {
		close(done)
		<-stopped
	}
}
