package tui

// errorBannerModel renders the last refresh failure below the page body.
type errorBannerModel struct {
	message string
}

func (m errorBannerModel) View() string {
	if m.message == "" {
		return ""
	}

	content := errorStyle.Render("Error: " + m.message)
	if hint := networkHint(m.message); hint != "" {
		content += "\n" + hint
	}
	content += "\n" + helpStyle.Render("esc: dismiss")
	return overlayBoxStyle.Render(content)
}
