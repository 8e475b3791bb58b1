// Package content loads the blog articles served by the marketing site.
// Articles are markdown files with a small key:value front-matter block;
// the slug comes from the filename.
package content

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set).
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// Article is one published blog post.
type Article struct {
	Slug        string
	Title       string
	Lang        string // en or pt
	Category    string // technical or referral
	Summary     string
	ReadMinutes int
	Published   time.Time
	NextSlug    string // optional pointer to a follow-up article
	HTML        template.HTML
}

// Library holds all loaded articles, newest first.
type Library struct {
	articles []Article
	bySlug   map[string]int
}

// NewLibrary builds a Library from already-parsed articles, newest first.
func NewLibrary(articles []Article) *Library {
	lib := &Library{articles: articles, bySlug: make(map[string]int)}
	sort.Slice(lib.articles, func(i, j int) bool {
		return lib.articles[i].Published.After(lib.articles[j].Published)
	})
	for i, a := range lib.articles {
		lib.bySlug[a.Slug] = i
	}
	return lib
}

// Load reads every .md file under dir.
// PRE: dir exists and is readable
// POST: returns a Library with articles sorted newest first
func Load(dir string) (*Library, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read content dir: %w", err)
	}

	var articles []Article
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read article %s: %w", e.Name(), err)
		}
		art, err := Parse(strings.TrimSuffix(e.Name(), ".md"), raw)
		if err != nil {
			return nil, fmt.Errorf("parse article %s: %w", e.Name(), err)
		}
		articles = append(articles, art)
	}
	return NewLibrary(articles), nil
}

// Parse builds an Article from raw markdown with front matter.
// PRE: raw begins with a "---" front-matter block containing a title
// POST: returns the article with body rendered to sanitized HTML
func Parse(slug string, raw []byte) (Article, error) {
	meta, body, err := splitFrontMatter(raw)
	if err != nil {
		return Article{}, err
	}
	if meta["title"] == "" {
		return Article{}, fmt.Errorf("article %s: missing title", slug)
	}

	art := Article{
		Slug:     slug,
		Title:    meta["title"],
		Lang:     meta["lang"],
		Category: meta["category"],
		Summary:  meta["summary"],
		NextSlug: meta["next"],
	}
	if art.Lang == "" {
		art.Lang = "en"
	}
	if v := meta["minutes"]; v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Article{}, fmt.Errorf("article %s: bad minutes %q", slug, v)
		}
		art.ReadMinutes = n
	}
	if v := meta["date"]; v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return Article{}, fmt.Errorf("article %s: bad date %q", slug, v)
		}
		art.Published = t
	}

	var buf bytes.Buffer
	if err := mdRenderer.Convert(body, &buf); err != nil {
		return Article{}, fmt.Errorf("article %s: render: %w", slug, err)
	}
	art.HTML = template.HTML(buf.String())
	return art, nil
}

// splitFrontMatter separates the leading "---" block from the body.
func splitFrontMatter(raw []byte) (map[string]string, []byte, error) {
	text := string(raw)
	if !strings.HasPrefix(text, "---\n") {
		return nil, nil, fmt.Errorf("missing front matter")
	}
	rest := text[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return nil, nil, fmt.Errorf("unterminated front matter")
	}

	meta := make(map[string]string)
	for _, line := range strings.Split(rest[:end], "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, nil, fmt.Errorf("bad front-matter line %q", line)
		}
		meta[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	body := rest[end+len("\n---"):]
	body = strings.TrimPrefix(body, "\n")
	return meta, []byte(body), nil
}

// All returns every article, newest first.
func (l *Library) All() []Article {
	return l.articles
}

// ByLang returns articles for one display language, newest first.
func (l *Library) ByLang(lang string) []Article {
	var out []Article
	for _, a := range l.articles {
		if a.Lang == lang {
			out = append(out, a)
		}
	}
	return out
}

// Get returns the article with the given slug.
func (l *Library) Get(slug string) (Article, bool) {
	i, ok := l.bySlug[slug]
	if !ok {
		return Article{}, false
	}
	return l.articles[i], true
}
