package desktop

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/Project-Sylos/Desktop98/internal/config"
	"github.com/Project-Sylos/Desktop98/internal/db"
	"github.com/Project-Sylos/Desktop98/internal/desktopfs"
	"github.com/Project-Sylos/Desktop98/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore keeps desktop state in memory
type memStore struct {
	mu       sync.Mutex
	windows  []types.WindowState
	icons    []types.DesktopIcon
	settings map[string]any
	saves    int
	closed   bool
	failSave bool
}

func newMemStore() *memStore {
	return &memStore{settings: make(map[string]any)}
}

func (s *memStore) SaveWindows(states []types.WindowState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSave {
		return errors.New("disk full")
	}
	s.saves++
	s.windows = append([]types.WindowState(nil), states...)
	return nil
}

func (s *memStore) LoadWindows() ([]types.WindowState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.WindowState{}, s.windows...), nil
}

func (s *memStore) SaveIcons(icons []types.DesktopIcon) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSave {
		return errors.New("disk full")
	}
	s.icons = cloneIcons(icons)
	return nil
}

func (s *memStore) LoadIcons() ([]types.DesktopIcon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneIcons(s.icons), nil
}

func (s *memStore) SaveSetting(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSave {
		return errors.New("disk full")
	}
	s.settings[key] = value
	return nil
}

func (s *memStore) GetSetting(key string, dest any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.settings[key]
	if !ok {
		return false, nil
	}
	switch d := dest.(type) {
	case *string:
		*d = value.(string)
	case *types.ScreenSaverSettings:
		*d = value.(types.ScreenSaverSettings)
	case *types.Wallpaper:
		*d = value.(types.Wallpaper)
	}
	return true, nil
}

func (s *memStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.windows, s.icons = nil, nil
	s.settings = make(map[string]any)
	return nil
}

func (s *memStore) Close() error {
	s.closed = true
	return nil
}

func testConfig() *types.Config {
	cfg := config.DefaultConfig()
	return &cfg
}

func newDesktop(t *testing.T, store Store) *Desktop {
	t.Helper()
	d, err := New(testConfig(), store)
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return d
}

func TestNewDefaults(t *testing.T) {
	d := newDesktop(t, nil)

	assert.Len(t, d.FileSystem().Forest(), 4)
	assert.Len(t, d.Icons(), 9)
	assert.Len(t, d.StartMenu(), 5)
	assert.Equal(t, "windows98", d.Settings().Theme)
	assert.Equal(t, "windows98", d.Theme().ID)
	assert.Equal(t, types.ScreenSaverSettings{TimeoutMinutes: 1, Type: types.ScreenSaverNone}, d.Settings().ScreenSaver)
	assert.Equal(t, types.WallpaperNone, d.Settings().Wallpaper.Type)

	w, h := d.WindowController().Viewport()
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)
}

func TestNewRejectsNilConfig(t *testing.T) {
	_, err := New(nil, nil)
	assert.Error(t, err)
}

func TestForestSources(t *testing.T) {
	t.Run("synthetic drive appended", func(t *testing.T) {
		cfg := testConfig()
		cfg.Synthetic.Enabled = true
		d, err := New(cfg, nil)
		require.NoError(t, err)
		defer d.Close()

		forest := d.FileSystem().Forest()
		require.Len(t, forest, 5)
		assert.Equal(t, cfg.Synthetic.DriveID, forest[4].ID)
		assert.NotEmpty(t, d.FileSystem().GetFolderChildren(cfg.Synthetic.DriveID))
	})

	t.Run("forest file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "forest.json")
		doc := `{"file_system":[{"id":"c","name":"C:","type":"drive","children":[{"id":"readme","name":"readme.txt","type":"file","content":"hi"}]}],"recycle_bin":[]}`
		require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

		cfg := testConfig()
		cfg.ForestPath = path
		d, err := New(cfg, nil)
		require.NoError(t, err)
		defer d.Close()

		content, err := d.FileSystem().GetFileContent("readme")
		require.NoError(t, err)
		assert.Equal(t, "hi", content)
	})

	t.Run("missing forest file", func(t *testing.T) {
		cfg := testConfig()
		cfg.ForestPath = filepath.Join(t.TempDir(), "missing.json")
		_, err := New(cfg, nil)
		assert.Error(t, err)
	})
}

func TestOpenEntry(t *testing.T) {
	d := newDesktop(t, nil)

	win, err := d.OpenEntry("resume")
	require.NoError(t, err)
	assert.Equal(t, "my-cv", win.ID)
	assert.Equal(t, 101, win.ZIndex)

	_, err = d.OpenEntry("cover-letter")
	assert.True(t, errors.Is(err, desktopfs.ErrNoAction))

	_, err = d.OpenEntry("missing")
	assert.True(t, errors.Is(err, desktopfs.ErrNotFound))
}

func TestWindowsPersistOnChange(t *testing.T) {
	store := newMemStore()
	store.windows = []types.WindowState{{ID: "paint", Title: "Paint", X: 5, Y: 6, Width: 300, Height: 200}}
	d := newDesktop(t, store)

	assert.Equal(t, 0, store.saves, "subscribing does not overwrite saved geometry")

	_, err := d.OpenIcon("note-pad")
	require.NoError(t, err)
	assert.Equal(t, 1, store.saves)
	require.Len(t, store.windows, 1)
	assert.Equal(t, "notepad", store.windows[0].ID)

	d.Windows().Move("notepad", 42, 43)
	assert.Equal(t, 42, store.windows[0].X)
	assert.Equal(t, 43, store.windows[0].Y)
}

func TestPersistedGeometryAppliesOnFirstOpen(t *testing.T) {
	store := newMemStore()
	store.windows = []types.WindowState{{ID: "paint", Title: "Paint", X: 5, Y: 6, Width: 300, Height: 200, Minimized: true}}
	d := newDesktop(t, store)

	win, err := d.OpenIcon("paint")
	require.NoError(t, err)
	assert.Equal(t, 5, win.X)
	assert.Equal(t, 6, win.Y)
	assert.Equal(t, 300, win.Width)
	assert.Equal(t, 200, win.Height)
	assert.True(t, win.Minimized)
	assert.Equal(t, ComponentPaint, win.Content.Component, "content comes from the launch, not the store")

	d.Windows().Close("paint")
	win, err = d.OpenIcon("paint")
	require.NoError(t, err)
	assert.Equal(t, 100, win.X, "saved geometry is used once")
	assert.Equal(t, 800, win.Width)
}

func TestSaveFailureIsLogged(t *testing.T) {
	store := newMemStore()
	d := newDesktop(t, store)
	store.failSave = true

	_, err := d.OpenIcon("paint")
	assert.NoError(t, err, "window persistence errors do not fail the open")
	assert.Equal(t, 1, d.Windows().Len())
}

func TestIcons(t *testing.T) {
	store := newMemStore()
	d := newDesktop(t, store)

	moved, err := d.MoveIcon("paint", 400, 300)
	require.NoError(t, err)
	assert.Equal(t, 400, moved.X)
	require.Len(t, store.icons, 9)
	assert.Equal(t, 400, store.icons[8].X)

	_, err = d.MoveIcon("missing", 0, 0)
	assert.True(t, errors.Is(err, ErrIconNotFound))

	added, err := d.AddIcon(types.DesktopIcon{Title: "Shortcut", Icon: "📁", X: 250, Y: 50})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.Len(t, d.Icons(), 10)

	_, err = d.AddIcon(types.DesktopIcon{ID: "paint", Title: "Paint"})
	assert.True(t, errors.Is(err, ErrDuplicateIcon))
	_, err = d.AddIcon(types.DesktopIcon{ID: "untitled"})
	assert.True(t, errors.Is(err, ErrInvalidSetting))

	_, err = d.OpenIcon(added.ID)
	assert.True(t, errors.Is(err, desktopfs.ErrNoAction))

	require.NoError(t, d.RemoveIcon(added.ID))
	assert.Len(t, d.Icons(), 9)
	assert.True(t, errors.Is(d.RemoveIcon(added.ID), ErrIconNotFound))
}

func TestIconsAreDetached(t *testing.T) {
	d := newDesktop(t, nil)

	icons := d.Icons()
	icons[0].X = 999
	icons[0].Launch.Content.Params["folderId"] = "changed"

	icon, err := d.Icon(icons[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 50, icon.X)
	assert.Equal(t, desktopfs.RootID, icon.Launch.Content.Params["folderId"])
}

func TestIconsRestoredFromStore(t *testing.T) {
	store := newMemStore()
	store.icons = []types.DesktopIcon{{ID: "only", Title: "Only", X: 1, Y: 2}}
	d := newDesktop(t, store)

	icons := d.Icons()
	require.Len(t, icons, 1)
	assert.Equal(t, "only", icons[0].ID)
}

func TestIconSaveFailure(t *testing.T) {
	store := newMemStore()
	d := newDesktop(t, store)
	store.failSave = true

	_, err := d.MoveIcon("paint", 1, 1)
	assert.Error(t, err)
}

func TestMediaPlayerIconInjectsMinimized(t *testing.T) {
	d := newDesktop(t, nil)

	win, err := d.OpenIcon("media-player")
	require.NoError(t, err)
	assert.Equal(t, "media-player.exe", win.ID)
	assert.Equal(t, false, win.ContentInputs()["minimized"])
}

func TestStartMenu(t *testing.T) {
	d := newDesktop(t, nil)

	tests := []struct {
		id       string
		windowID string
	}{
		{id: "my-computer", windowID: "file-explorer"},
		{id: "settings", windowID: "settings"},
		{id: "find", windowID: "search"},
		{id: "help", windowID: "help"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			win, err := d.OpenStartMenuItem(tt.id)
			require.NoError(t, err)
			require.NotNil(t, win)
			assert.Equal(t, tt.windowID, win.ID)
		})
	}

	win, err := d.OpenStartMenuItem(ShutdownID)
	assert.NoError(t, err)
	assert.Nil(t, win)

	_, err = d.OpenStartMenuItem("missing")
	assert.True(t, errors.Is(err, ErrMenuItemNotFound))

	taskbar := d.Taskbar()
	require.Len(t, taskbar, 4)
	assert.True(t, taskbar[3].Active)
}

func TestMyComputerIconAndMenuShareWindow(t *testing.T) {
	d := newDesktop(t, nil)

	_, err := d.OpenIcon("my-computer")
	require.NoError(t, err)
	_, err = d.OpenStartMenuItem("my-computer")
	require.NoError(t, err)
	assert.Equal(t, 1, d.Windows().Len())
}

func TestSettings(t *testing.T) {
	store := newMemStore()
	d := newDesktop(t, store)

	require.NoError(t, d.SetTheme("windows7"))
	assert.Equal(t, "windows7", d.Theme().ID)
	assert.Equal(t, "windows7", store.settings[types.SettingTheme])
	assert.True(t, errors.Is(d.SetTheme("beos"), ErrInvalidSetting))

	saver := types.ScreenSaverSettings{TimeoutMinutes: 10, Enabled: true, Type: types.ScreenSaverPipes}
	require.NoError(t, d.SetScreenSaver(saver))
	assert.Equal(t, saver, d.Settings().ScreenSaver)

	require.NoError(t, d.SetWallpaper(types.Wallpaper{Type: types.WallpaperImage, URL: "/wallpapers/clouds.png"}))
	assert.Equal(t, types.WallpaperCenter, d.Settings().Wallpaper.Position)
}

func TestSettingsValidation(t *testing.T) {
	d := newDesktop(t, nil)

	screenSavers := []types.ScreenSaverSettings{
		{TimeoutMinutes: 0, Type: types.ScreenSaverClock},
		{TimeoutMinutes: 5, Type: "fish"},
	}
	for _, s := range screenSavers {
		assert.True(t, errors.Is(d.SetScreenSaver(s), ErrInvalidSetting), "%+v", s)
	}

	wallpapers := []types.Wallpaper{
		{Type: types.WallpaperImage},
		{Type: types.WallpaperColor},
		{Type: "video", URL: "x"},
		{Type: types.WallpaperImage, URL: "x", Position: "fill"},
	}
	for _, w := range wallpapers {
		assert.True(t, errors.Is(d.SetWallpaper(w), ErrInvalidSetting), "%+v", w)
	}

	assert.Equal(t, DefaultSettings("windows98"), d.Settings())
}

func TestSettingsRestoredFromStore(t *testing.T) {
	store := newMemStore()
	store.settings[types.SettingTheme] = "windows10"
	store.settings[types.SettingScreenSaver] = types.ScreenSaverSettings{TimeoutMinutes: 3, Type: types.ScreenSaverClock}
	store.settings[types.SettingWallpaper] = types.Wallpaper{Type: types.WallpaperColor, BackgroundColor: "#000"}
	d := newDesktop(t, store)

	settings := d.Settings()
	assert.Equal(t, "windows10", settings.Theme)
	assert.Equal(t, 3, settings.ScreenSaver.TimeoutMinutes)
	assert.Equal(t, "#000", settings.Wallpaper.BackgroundColor)

	store.settings[types.SettingTheme] = "beos"
	again := newDesktop(t, store)
	assert.Equal(t, "windows98", again.Settings().Theme, "unknown persisted theme falls back")
}

func TestResetState(t *testing.T) {
	store := newMemStore()
	d := newDesktop(t, store)

	require.NoError(t, d.SetTheme("windows7"))
	require.NoError(t, d.RemoveIcon("paint"))
	require.NoError(t, d.ResetState())

	assert.Equal(t, "windows98", d.Settings().Theme)
	assert.Len(t, d.Icons(), 9)
	assert.Empty(t, store.settings)

	state := d.State()
	assert.Empty(t, state.Windows)
	assert.Len(t, state.Icons, 9)
}

func TestSetViewport(t *testing.T) {
	d := newDesktop(t, nil)

	require.NoError(t, d.SetViewport(640, 480))
	w, h := d.DialogController().Viewport()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
	assert.True(t, errors.Is(d.SetViewport(0, 480), ErrInvalidSetting))
}

func TestCloseClosesStore(t *testing.T) {
	store := newMemStore()
	d, err := New(testConfig(), store)
	require.NoError(t, err)

	require.NoError(t, d.Close())
	assert.True(t, store.closed)

	d.Windows().Open(&types.Window{Movable: types.Movable{ID: "late"}})
	assert.Equal(t, 0, store.saves, "closed desktop no longer persists")
}

func TestDuckDBRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "desktop98.db")
	cfg := testConfig()
	cfg.Storage.DBPath = path

	d, err := Open(cfg)
	require.NoError(t, err)
	_, err = d.OpenIcon("notepad")
	assert.True(t, errors.Is(err, ErrIconNotFound))
	_, err = d.OpenIcon("note-pad")
	require.NoError(t, err)
	d.Windows().Move("notepad", 12, 34)
	require.NoError(t, d.SetTheme("windows10"))
	require.NoError(t, d.Close())

	store, err := db.New(path)
	require.NoError(t, err)
	reopened, err := New(cfg, store)
	require.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t, "windows10", reopened.Settings().Theme)
	win, err := reopened.OpenIcon("note-pad")
	require.NoError(t, err)
	assert.Equal(t, 12, win.X)
	assert.Equal(t, 34, win.Y)
}
