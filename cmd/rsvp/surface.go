package main

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/reusee/rsvp/fixations"
	"github.com/reusee/rsvp/readers"
)

// orpColumn is the screen column the center letter is kept on.
const orpColumn = 16

// alignPresentation pads the word so its center letter lands on orpColumn.
func alignPresentation(p fixations.Presentation, center func(string) string) string {
	pad := max(0, orpColumn-lipgloss.Width(p.Before))
	if center == nil {
		center = func(s string) string { return s }
	}
	return strings.Repeat(" ", pad) + p.Before + center(p.Center) + p.After
}

// teaSurface hands frames to the bubbletea program. Only the latest frame is
// kept, so Present never waits on the program.
type teaSurface struct {
	frames chan readers.Frame
}

var _ readers.Surface = new(teaSurface)

func newTeaSurface() *teaSurface {
	return &teaSurface{
		frames: make(chan readers.Frame, 1),
	}
}

func (s *teaSurface) Present(frame readers.Frame) {
	// steps are serialized, so this is the only sender
	for {
		select {
		case s.frames <- frame:
			return
		default:
		}
		select {
		case <-s.frames:
		default:
		}
	}
}

// plainSurface prints one aligned line per presented word.
type plainSurface struct {
	w io.Writer
	// rewrite the same terminal line instead of appending lines
	overwrite bool
	last      readers.Frame
	done      chan struct{}
	doneOnce  sync.Once
}

var _ readers.Surface = new(plainSurface)

func newPlainSurface(w io.Writer, overwrite bool) *plainSurface {
	return &plainSurface{
		w:         w,
		overwrite: overwrite,
		done:      make(chan struct{}),
	}
}

func (s *plainSurface) Present(frame readers.Frame) {
	if !frame.Presentation.IsZero() && frame.Position < frame.Total &&
		(frame.Presentation != s.last.Presentation || frame.Position != s.last.Position) {
		line := alignPresentation(frame.Presentation, nil)
		if s.overwrite {
			fmt.Fprint(s.w, "\r\x1b[K"+line)
		} else {
			fmt.Fprintln(s.w, line)
		}
	}
	s.last = frame
	if frame.Phase == readers.Finished {
		s.Close()
	}
}

// Done is closed when the session finishes or the surface is closed.
func (s *plainSurface) Done() <-chan struct{} {
	return s.done
}

func (s *plainSurface) Close() {
	s.doneOnce.Do(func() {
		if s.overwrite {
			fmt.Fprintln(s.w)
		}
		close(s.done)
	})
}
