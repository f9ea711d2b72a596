package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tube_analytics/internal/config"
	"tube_analytics/internal/domain"
	"tube_analytics/internal/scoring"
	"tube_analytics/internal/service"
	"tube_analytics/internal/stats"
)

type analyzer struct {
	dashboard *service.Dashboard
	cfg       *config.Config
}

// run dispatches one subcommand and returns the value to print.
func (a *analyzer) run(ctx context.Context, name string, args []string) (any, error) {
	switch name {
	case "channel":
		return a.channel(ctx, args)
	case "video":
		return a.video(ctx, args)
	case "trending":
		return a.trending(ctx, args)
	case "search":
		return a.search(ctx, args)
	case "keyword":
		return a.keyword(ctx, args)
	case "seo":
		return seo(args)
	case "abtest":
		return abtest(args)
	case "tags":
		return tags(args)
	case "compare":
		return a.compare(ctx, args)
	case "schedule":
		return schedule(args)
	default:
		return nil, fmt.Errorf("unknown command %q", name)
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func joinArgs(fs *flag.FlagSet) string {
	return strings.TrimSpace(strings.Join(fs.Args(), " "))
}

func (a *analyzer) channel(ctx context.Context, args []string) (any, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("channel takes exactly one url, id or handle")
	}
	return a.dashboard.AnalyzeChannel(ctx, args[0])
}

func (a *analyzer) video(ctx context.Context, args []string) (any, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("video takes exactly one url or id")
	}
	return a.dashboard.AnalyzeVideo(ctx, args[0])
}

func (a *analyzer) trending(ctx context.Context, args []string) (any, error) {
	fs := newFlagSet("trending")
	region := fs.String("region", a.cfg.Dashboard.Region, "region code")
	sortBy := fs.String("sort", string(stats.SortViews), "views, likes or comments")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	key, err := stats.ParseSortKey(*sortBy)
	if err != nil {
		return nil, err
	}
	return a.dashboard.LoadTrending(ctx, strings.ToUpper(*region), key)
}

func (a *analyzer) search(ctx context.Context, args []string) (any, error) {
	fs := newFlagSet("search")
	typ := fs.String("type", string(domain.ResultVideo), "video or channel")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	rt := domain.ResultType(*typ)
	if !rt.Valid() {
		return nil, fmt.Errorf("unknown result type %q", *typ)
	}
	return a.dashboard.Search(ctx, joinArgs(fs), rt)
}

func (a *analyzer) keyword(ctx context.Context, args []string) (any, error) {
	return a.dashboard.ExploreKeyword(ctx, strings.Join(args, " "))
}

func seo(args []string) (any, error) {
	fs := newFlagSet("seo")
	title := fs.String("title", "", "video title")
	description := fs.String("description", "", "video description")
	tagList := fs.String("tags", "", "comma separated tags")
	keyword := fs.String("keyword", "", "target keyword")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if strings.TrimSpace(*title) == "" {
		return nil, fmt.Errorf("seo needs -title")
	}
	return scoring.AnalyzeSEO(*title, *description, *tagList, *keyword), nil
}

func abtest(args []string) (any, error) {
	fs := newFlagSet("abtest")
	a := fs.String("a", "", "title A")
	b := fs.String("b", "", "title B")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if strings.TrimSpace(*a) == "" || strings.TrimSpace(*b) == "" {
		return nil, fmt.Errorf("abtest needs both -a and -b")
	}
	return scoring.CompareTitles(*a, *b), nil
}

type tagsOutput struct {
	Tags     []string `json:"tags"`
	Selected []string `json:"selected"`
	Export   string   `json:"export"`
}

func tags(args []string) (any, error) {
	fs := newFlagSet("tags")
	category := fs.String("category", "", "preset category to add")
	selection := fs.String("select", "", "comma separated tags to select")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	keyword := joinArgs(fs)
	if keyword == "" {
		return nil, fmt.Errorf("tags needs a keyword")
	}

	generated := scoring.GenerateTags(keyword)
	if *category != "" {
		c, ok := scoring.CategoryNamed(*category)
		if !ok {
			return nil, fmt.Errorf("unknown category %q", *category)
		}
		generated = scoring.AddCategory(generated, c)
	}

	var sel scoring.TagSelection
	for _, t := range scoring.ParseTags(*selection) {
		if err := sel.Toggle(t); err != nil {
			return nil, err
		}
	}

	return tagsOutput{
		Tags:     generated,
		Selected: sel.Selected(),
		Export:   sel.Export(generated),
	}, nil
}

func (a *analyzer) compare(ctx context.Context, args []string) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("compare needs at least one channel")
	}

	var report *service.CompetitorReport
	for _, input := range args {
		r, err := a.dashboard.AddCompetitor(ctx, input)
		if err != nil {
			return nil, err
		}
		report = r
	}
	return report, nil
}

func schedule(args []string) (any, error) {
	fs := newFlagSet("schedule")
	niche := fs.String("niche", string(stats.NicheTech), "content niche")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	n, err := stats.ParseNiche(*niche)
	if err != nil {
		return nil, err
	}
	return stats.ScheduleFor(n), nil
}
