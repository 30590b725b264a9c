package rsvpconfigs

import (
	"testing"
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/rsvp/cmds"
	"github.com/reusee/rsvp/configs"
	"github.com/reusee/rsvp/modes"
	"github.com/reusee/rsvp/pacings"
	"github.com/reusee/rsvp/settings"
)

func testScope(t *testing.T, files ...string) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(files, Schema)
		},
	)
}

func TestDefaults(t *testing.T) {
	testScope(t).Call(func(
		rate InitialRate,
		backWords BackWords,
		params pacings.Params,
		store settings.Store,
		logFile LogFile,
	) {
		if rate != 300 {
			t.Fatalf("got %v", rate)
		}
		if backWords != 10 {
			t.Fatalf("got %v", backWords)
		}
		if params != pacings.DefaultParams() {
			t.Fatalf("got %+v", params)
		}
		if _, ok := store.(*settings.Memory); !ok {
			t.Fatalf("got %T", store)
		}
		if logFile != "" {
			t.Fatalf("got %v", logFile)
		}
	})
}

func TestFromConfigFile(t *testing.T) {
	testScope(t, "testdata/rsvp.cue").Call(func(
		rate InitialRate,
		backWords BackWords,
		params pacings.Params,
		logFile LogFile,
	) {
		if rate != 420 {
			t.Fatalf("got %v", rate)
		}
		if backWords != 5 {
			t.Fatalf("got %v", backWords)
		}
		if params.PunctuationPause != 120*time.Millisecond {
			t.Fatalf("got %v", params.PunctuationPause)
		}
		if params.Punctuation != ".!?" {
			t.Fatalf("got %q", params.Punctuation)
		}
		if params.PerExtraRune != 15*time.Millisecond {
			t.Fatalf("untouched field changed: %v", params.PerExtraRune)
		}
		if logFile != "/tmp/rsvp.log" {
			t.Fatalf("got %v", logFile)
		}
	})
}

func TestInitialRatePrecedence(t *testing.T) {
	store := settings.NewMemory()
	scope := testScope(t, "testdata/rsvp.cue").Fork(
		func() settings.Store {
			return store
		},
	)

	// remembered rate beats config
	if err := settings.SaveRate(store, 250); err != nil {
		t.Fatal(err)
	}
	if rate := dscope.Get[InitialRate](scope); rate != 250 {
		t.Fatalf("got %v", rate)
	}

	// flag beats everything
	cmds.GlobalExecutor.MustExecute([]string{"-wpm", "700"})
	defer cmds.GlobalExecutor.MustExecute([]string{"-wpm", "0"})
	if rate := dscope.Get[InitialRate](scope.Fork(func() settings.Store {
		return store
	})); rate != 700 {
		t.Fatalf("got %v", rate)
	}

	// out of range flag is ignored
	cmds.GlobalExecutor.MustExecute([]string{"-wpm", "5"})
	if rate := dscope.Get[InitialRate](scope.Fork(func() settings.Store {
		return store
	})); rate != 250 {
		t.Fatalf("got %v", rate)
	}
}

func TestInvalidConfig(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("should panic on schema violation")
		}
	}()
	testScope(t, "testdata/invalid.cue").Call(func(
		rate InitialRate,
	) {
	})
}

func TestSettingsFile(t *testing.T) {
	dir := t.TempDir()
	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, Schema)
		},
		func() SettingsFile {
			return SettingsFile(dir + "/settings.json")
		},
	).Call(func(
		store settings.Store,
	) {
		file, ok := store.(*settings.File)
		if !ok {
			t.Fatalf("got %T", store)
		}
		if file.Path != dir+"/settings.json" {
			t.Fatalf("got %v", file.Path)
		}
	})
}
