package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/Veraticus/ecosmart/internal/classifier"
	"github.com/Veraticus/ecosmart/internal/common"
	"github.com/Veraticus/ecosmart/internal/dashboard"
	"github.com/Veraticus/ecosmart/internal/imaging"
	"github.com/Veraticus/ecosmart/internal/model"
	"github.com/Veraticus/ecosmart/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify FILE...",
		Short: "Classify image files without the dashboard",
		Long: `Classify one or more image files and print the results.

Each file runs through its own upload flow, so the same validation and
failure handling apply as in the dashboard.

Examples:
  ecosmart classify bottle.png
  ecosmart classify --parallel 8 --format json photos/*.jpg`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parallel, _ := cmd.Flags().GetInt("parallel")
			format, _ := cmd.Flags().GetString("format")
			quiet, _ := cmd.Flags().GetBool("quiet")

			mock := classifier.NewMock(classifier.WithDelays(appConfig.Classifier.ManualDelay, appConfig.Classifier.CaptureDelay))
			cls := classifier.NewGuarded(mock, appConfig.Classifier.Timeout, slog.Default().With("component", "classifier"))

			opts := classifyOptions{
				Classifier: cls,
				Now:        time.Now,
				Theme:      themes.GetTheme(appConfig.UI.Theme),
				Format:     format,
				Parallel:   parallel,
			}
			if !quiet {
				opts.Progress = cmd.ErrOrStderr()
			}
			err := runClassify(cmd.Context(), cmd.OutOrStdout(), args, opts)
			slog.Info("classify finished", "files", len(args), "classifier_calls", mock.Calls(), "error", err)
			return err
		},
	}

	cmd.Flags().IntP("parallel", "p", 4, "Number of images classified at once")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
	cmd.Flags().BoolP("quiet", "q", false, "Hide the progress bar")

	return cmd
}

type classifyOptions struct {
	Classifier classifier.Classifier
	Progress   io.Writer
	Now        func() time.Time
	Theme      themes.Theme
	Format     string
	Parallel   int
}

// classifyRow is one line of output.
type classifyRow struct {
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Path        string     `json:"path"`
	Event       string     `json:"event,omitempty"`
	Category    string     `json:"category,omitempty"`
	Item        string     `json:"item,omitempty"`
	Error       string     `json:"error,omitempty"`
	Confidence  int        `json:"confidence,omitempty"`
	err         error
	category    model.Category
}

func runClassify(ctx context.Context, w io.Writer, paths []string, opts classifyOptions) error {
	if opts.Parallel < 1 {
		return common.NewUserError("--parallel must be at least 1",
			fmt.Errorf("%w: parallel %d", common.ErrInvalidConfig, opts.Parallel))
	}
	if opts.Format != "table" && opts.Format != "json" {
		return common.NewUserError(fmt.Sprintf("--format must be table or json, not %q", opts.Format),
			fmt.Errorf("%w: format %q", common.ErrInvalidConfig, opts.Format))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = progressbar.NewOptions(len(paths),
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowCount(),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("[cyan][bold]Classifying images...[reset]"),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				_, _ = fmt.Fprintln(opts.Progress)
			}),
		)
	}

	rows := make([]classifyRow, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallel)

	for i, path := range paths {
		g.Go(func() error {
			rows[i] = classifyFile(gctx, path, opts)
			if bar != nil {
				if err := bar.Add(1); err != nil {
					slog.Warn("failed to update progress bar", "error", err)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var failures []error
	for _, r := range rows {
		if r.err != nil {
			failures = append(failures, r.err)
		}
	}
	failed := len(failures)

	var err error
	if opts.Format == "json" {
		err = writeJSON(w, rows)
	} else {
		err = writeTable(w, rows, opts.Theme)
	}
	if err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	if failed > 0 {
		return common.NewUserError(
			fmt.Sprintf("%d of %d images could not be classified", failed, len(paths)),
			errors.Join(failures...))
	}
	return nil
}

// classifyFile drives a single upload flow from staging to a result.
func classifyFile(ctx context.Context, path string, opts classifyOptions) classifyRow {
	row := classifyRow{Path: path}
	fail := func(err error) classifyRow {
		row.err = err
		row.Error = common.UserMessage(err)
		slog.Warn("classification failed", "path", path, "error", err)
		return row
	}

	img, err := imaging.Load(path, model.OriginFile)
	if err != nil {
		return fail(err)
	}

	flow := dashboard.NewUploadFlow()
	if err := flow.Stage(img); err != nil {
		return fail(err)
	}
	id, ok := flow.BeginClassify()
	if !ok {
		return fail(common.ErrFlowBusy)
	}

	result, err := opts.Classifier.Classify(ctx, img)
	if err != nil {
		flow.Fail(id, err)
		return fail(err)
	}

	ev, ok := flow.Complete(id, result, opts.Now())
	if !ok {
		return fail(errors.New("classification result was discarded"))
	}

	slog.Info("classified image",
		"path", path,
		"category", ev.Result.Category,
		"confidence", ev.Result.Confidence,
		"event", ev.ID)

	row.Event = ev.ID.String()
	row.category = ev.Result.Category
	row.Category = ev.Result.Category.String()
	row.Item = ev.Result.ItemLabel
	row.Confidence = ev.Result.Confidence
	row.CompletedAt = &ev.CompletedAt
	return row
}

func writeJSON(w io.Writer, rows []classifyRow) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func writeTable(w io.Writer, rows []classifyRow, theme themes.Theme) error {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("FILE", "CATEGORY", "ITEM", "CONFIDENCE", "STATUS").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, r := range rows {
		if r.err != nil {
			t.Row(r.Path, "", "", "", theme.StatusError.Render(r.Error))
			continue
		}
		style := theme.StyleFor(r.category)
		t.Row(
			r.Path,
			lipgloss.NewStyle().Foreground(style.Color).Render(style.Icon+" "+style.Label),
			r.Item,
			strconv.Itoa(r.Confidence)+"%",
			theme.StatusSuccess.Render("ok"),
		)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
