package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"techo/lib/journal"
	"techo/types"
)

// EditorPage is the compose/edit form. A draft with an id updates that entry
// on save; one without creates a new entry. A failed save re-renders this
// page with the error so the draft is not lost.
func EditorPage(draft journal.Draft, saveErr error) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<main class="editor">
<form action="/entries/save" method="post">
<header class="editor-head">
<span class="date-badge">%s</span>
<div class="moods">
`, esc(draft.Date))
		if err != nil {
			return err
		}

		for _, mood := range types.Moods {
			checked := ""
			if string(mood.Type) == draft.Mood {
				checked = " checked"
			}
			_, err := fmt.Fprintf(w, `<label class="mood-pick %s" title="%s"><input type="radio" name="mood" value="%s"%s/><span>%s</span></label>`+"\n",
				esc(mood.Color), esc(mood.Label), esc(string(mood.Type)), checked, mood.Emoji)
			if err != nil {
				return err
			}
		}

		idField := ""
		if draft.ID != 0 {
			idField = fmt.Sprintf(`<input type="hidden" name="id" value="%d"/>`, draft.ID)
		}

		errLine := ""
		if saveErr != nil {
			errLine = fmt.Sprintf(`<p class="error">%s</p>`, esc(saveErr.Error()))
		}

		_, err = fmt.Fprintf(w, `</div>
<div class="editor-actions">
<a class="button" href="/">取消</a>
<button class="button save" type="submit">保存</button>
</div>
</header>
%s
%s<input type="hidden" name="date" value="%s"/>
<input class="title" type="text" name="title" value="%s" placeholder="给今天起个标题吧..."/>
<textarea class="content" name="content" placeholder="记录下此刻的想法...">%s</textarea>
<input class="tags" type="text" name="tags" value="%s" placeholder="添加标签，用逗号分隔..."/>
</form>
</main>
`, errLine, idField, esc(draft.Date), esc(draft.Title), esc(draft.Content), esc(draft.Tags))
		return err
	})

	return page("写手帐", body)
}
