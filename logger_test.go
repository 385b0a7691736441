// seehuhn.de/go/spanops - run-length encoded pixel regions
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package spanops

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}

	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	s := FromSpans(Span{X: NewInterval(0, 1), Y: 0}, Span{X: NewInterval(5, 6), Y: 0})
	if n := len(s.Split()); n != 2 {
		t.Fatalf("got %d components", n)
	}
	out := buf.String()
	if !strings.Contains(out, "split span set") || !strings.Contains(out, "components=2") {
		t.Errorf("unexpected log output %q", out)
	}

	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelDebug) {
		t.Error("SetLogger(nil) did not restore the default")
	}
}
