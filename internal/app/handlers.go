package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dshills/regexplore/internal/config"
	"github.com/dshills/regexplore/internal/event"
	"github.com/dshills/regexplore/internal/match"
	"github.com/dshills/regexplore/internal/ui"
)

// registerHandlers wires the command handlers into the dispatcher. Every
// user-visible operation goes through here; key translation only decides
// which event to raise.
func (a *Application) registerHandlers() {
	a.dispatcher.SubscribeFunc(event.FindMatches, a.handleFindMatches)
	a.dispatcher.SubscribeFunc(event.ApplySample, a.handleApplySample)
	a.dispatcher.SubscribeFunc(event.ShowHelp, a.handleShowHelp)
	a.dispatcher.SubscribeFunc(event.ShowCode, a.handleShowCode)
	a.dispatcher.SubscribeFunc(event.AdjustPadding, a.handleAdjustPadding)
	a.dispatcher.SubscribeFunc(event.Quit, a.handleQuit)
	a.dispatcher.SubscribeFunc(event.ConfigReloaded, a.handleConfigReloaded)
}

// syncSession pulls the widget contents into the session. Flags need no
// sync; the flag bar flips them in the session directly.
func (a *Application) syncSession() {
	a.session.Pattern = a.patternBar.Text()
	a.session.Content = a.view.Text()
}

// handleFindMatches runs the search over the current pattern, flags and
// content. Highlights are replaced wholesale: on any failure the old
// spans are already gone, so the display never shows a result that does
// not belong to the reported status.
func (a *Application) handleFindMatches(ctx context.Context, ev event.Event) error {
	a.syncSession()
	a.session.ClearResult()
	a.view.ClearSpans()

	if a.session.Pattern == "" {
		a.status.SetError("No pattern provided")
		return ErrEmptyPattern
	}
	if a.session.Content == "" {
		a.status.SetError("No text provided")
		return ErrEmptyContent
	}

	res, err := a.finder.FindMatches(a.session.Pattern, a.session.Flags, a.session.Content)
	if err != nil {
		a.status.SetError(err.Error())
		return NewOperationError("search", a.session.Pattern, err)
	}

	a.session.SetResult(res)
	a.view.SetSpans(res.Spans)
	a.status.SetInfo(fmt.Sprintf("%d matches", res.Count))
	a.logger.WithField("pattern", a.session.Pattern).Debug("search found %d matches", res.Count)
	return nil
}

// handleApplySample overwrites the pattern and flags from a library
// entry. The content box is left alone so a sample can be tried against
// pasted text.
func (a *Application) handleApplySample(ctx context.Context, ev event.Event) error {
	idx, ok := ev.Payload.(int)
	if !ok || idx < 0 || idx >= len(a.library) {
		return NewOperationError("apply-sample", fmt.Sprint(ev.Payload), errors.New("no such sample"))
	}

	s := a.library[idx]
	a.session.Pattern = s.Pattern
	a.session.Flags = s.Flags
	a.patternBar.SetText(s.Pattern)
	a.session.ClearResult()
	a.view.ClearSpans()
	a.status.SetInfo(fmt.Sprintf("=> /%s/%s", s.Pattern, s.Flags.Letters()))
	return nil
}

// handleShowHelp opens the formatted help popup.
func (a *Application) handleShowHelp(ctx context.Context, ev event.Event) error {
	a.popup = ui.NewMarkupPopup("Help", helpText)
	return nil
}

// handleShowCode opens a popup with Go source equivalent to the current
// search. The snippet is generated for whatever is in the pattern bar,
// valid or not; the point is showing what the call would look like.
func (a *Application) handleShowCode(ctx context.Context, ev event.Event) error {
	a.syncSession()
	snippet := match.GenerateSnippet(a.session.Pattern, a.session.Flags)
	a.popup = ui.NewTextPopup("Equivalent Go code", snippet)
	return nil
}

// handleAdjustPadding grows or shrinks the content padding by the
// payload delta. The view clamps to its usable range.
func (a *Application) handleAdjustPadding(ctx context.Context, ev event.Event) error {
	delta, ok := ev.Payload.(int)
	if !ok {
		return NewOperationError("adjust-padding", fmt.Sprint(ev.Payload), errors.New("bad payload"))
	}
	a.view.SetPadding(a.view.Padding() + delta)
	a.status.SetInfo(fmt.Sprintf("Padding %d", a.view.Padding()))
	return nil
}

// handleQuit flags the run loop to exit after the current event.
func (a *Application) handleQuit(ctx context.Context, ev event.Event) error {
	a.quitting.Store(true)
	return nil
}

// handleConfigReloaded rebuilds everything derived from configuration:
// the theme, the engine timeout and the display settings. The session
// and any open popup are untouched.
func (a *Application) handleConfigReloaded(ctx context.Context, ev event.Event) error {
	cfg, ok := ev.Payload.(config.Config)
	if !ok {
		return NewOperationError("config-reload", "", errors.New("bad payload"))
	}

	a.cfg = cfg
	a.theme = ui.NewTheme(cfg.Theme)
	a.finder = match.NewFinder(match.WithTimeout(time.Duration(cfg.Engine.TimeoutMS) * time.Millisecond))
	a.view.SetPadding(cfg.Display.Padding)
	a.view.SetWrap(cfg.Display.Wrap)
	a.status.SetInfo("Configuration reloaded")
	a.logger.Info("configuration reloaded")
	return nil
}
