package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"techo/lib/journal"
	"techo/types"
)

var weekdayHeaders = []string{"日", "一", "二", "三", "四", "五", "六"}

// Index is the home page: search header, month calendar, and the filtered
// entry list.
func Index(data PageData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<header class="topbar">
<h1>心语手帐</h1>
<form class="search" action="/search" method="get">
<input type="search" name="q" value="%s" placeholder="搜索手帐..."/>
</form>
<a class="button compose" href="/entries/new">写手帐</a>
</header>
<main>
`, esc(data.Query))
		if err != nil {
			return err
		}

		if err := calendar(data).Render(ctx, w); err != nil {
			return err
		}
		if err := entryList(data.Entries).Render(ctx, w); err != nil {
			return err
		}

		_, err = io.WriteString(w, "</main>\n")
		return err
	})

	return page("心语手帐", body)
}

func calendar(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section class="card calendar">
<div class="calendar-head">
<h2>%d年 %d月</h2>
<nav><a href="/view/prev">‹</a><a href="/view/next">›</a></nav>
</div>
<div class="calendar-grid">
`, data.Year, int(data.Month))
		if err != nil {
			return err
		}

		for _, h := range weekdayHeaders {
			if _, err := fmt.Fprintf(w, `<div class="weekday">%s</div>`+"\n", h); err != nil {
				return err
			}
		}

		for _, day := range data.Grid {
			if day == 0 {
				if _, err := io.WriteString(w, `<div class="day blank"></div>`+"\n"); err != nil {
					return err
				}
				continue
			}

			date := journal.DateString(data.Year, data.Month, day)

			// A populated day opens its first entry; an empty day opens a
			// fresh draft for that date.
			href := "/entries/new?date=" + date
			marker := ""
			if first, ok := data.FirstEntryOn(date); ok {
				href = fmt.Sprintf("/entries/%d/edit", first.ID)
				marker = `<span class="dot"></span>`
			}

			class := "day"
			if date == data.Today {
				class += " today"
			}

			if _, err := fmt.Fprintf(w, `<a class="%s" href="%s"><span>%d</span>%s</a>`+"\n", class, href, day, marker); err != nil {
				return err
			}
		}

		_, err = io.WriteString(w, "</div>\n</section>\n")
		return err
	})
}

func entryList(entries []types.Entry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section class="entries">
<div class="entries-head"><h2>最近记录</h2><span class="count">%d 篇手帐</span></div>
`, len(entries))
		if err != nil {
			return err
		}

		for _, e := range entries {
			if err := entryCard(e).Render(ctx, w); err != nil {
				return err
			}
		}

		_, err = io.WriteString(w, "</section>\n")
		return err
	})
}

func entryCard(e types.Entry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		mood := types.MoodByType(e.Mood)

		title := e.Title
		if title == "" {
			title = "无标题"
		}

		_, err := fmt.Fprintf(w, `<article class="card entry">
<div class="entry-head">
<span class="mood %s" title="%s">%s</span>
<div><p class="date">%s</p><h3>%s</h3></div>
<div class="actions">
<a href="/entries/%d/edit">编辑</a>
<form class="confirm-delete" action="/entries/%d/delete" method="post"><button type="submit">删除</button></form>
</div>
</div>
<p class="content">%s</p>
`, esc(mood.Color), esc(mood.Label), mood.Emoji, esc(journal.FormatDate(e.Date)), esc(title), e.ID, e.ID, esc(e.Content))
		if err != nil {
			return err
		}

		if e.Tags != "" {
			if _, err := io.WriteString(w, `<div class="tags">`); err != nil {
				return err
			}
			for _, tag := range journal.SplitTags(e.Tags) {
				if _, err := fmt.Fprintf(w, `<span class="tag">#%s</span>`, esc(tag)); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</div>\n"); err != nil {
				return err
			}
		}

		_, err = io.WriteString(w, "</article>\n")
		return err
	})
}
