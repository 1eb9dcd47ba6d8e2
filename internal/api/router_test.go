package api

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/Project-Sylos/Desktop98/internal/config"
	"github.com/Project-Sylos/Desktop98/internal/logging"
	"github.com/Project-Sylos/Desktop98/internal/types"
	"github.com/Project-Sylos/Desktop98/sdk"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logging.Set(zap.NewNop())
	os.Exit(m.Run())
}

// envelope is types.APIResponse with undecoded data
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) (*chi.Mux, *sdk.Desktop) {
	t.Helper()
	cfg := config.DefaultConfig()
	desktop, err := sdk.NewEphemeral(&cfg)
	require.NoError(t, err)
	t.Cleanup(func() { desktop.Close() })
	return NewRouter(desktop).SetupRoutes(), desktop
}

func do(t *testing.T, router http.Handler, method, path string, body any) (int, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec.Code, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var value T
	require.NoError(t, json.Unmarshal(env.Data, &value), string(env.Data))
	return value
}

func TestHealthAndMetrics(t *testing.T) {
	router, _ := newTestRouter(t)

	code, env := do(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "desktop98_http_requests_total")
}

func TestCORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/v1/windows", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestFolderChildren(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name         string
		path         string
		expectedCode int
		expectedIDs  []string
	}{
		{name: "root", path: "/api/v1/fs/folders/root/children", expectedCode: http.StatusOK,
			expectedIDs: []string{"flobbyDriveA", "localDiskC", "cdRomE", "cdRomE2"}},
		{name: "recycle bin", path: "/api/v1/fs/folders/recycle-bin/children", expectedCode: http.StatusOK,
			expectedIDs: []string{"deletedFile1"}},
		{name: "sorted by name", path: "/api/v1/fs/folders/documents/children?sort=name", expectedCode: http.StatusOK,
			expectedIDs: []string{"cover-letter", "resume"}},
		{name: "file has no children", path: "/api/v1/fs/folders/resume/children", expectedCode: http.StatusOK,
			expectedIDs: []string{}},
		{name: "unknown id", path: "/api/v1/fs/folders/missing/children", expectedCode: http.StatusOK,
			expectedIDs: []string{}},
		{name: "bad sort key", path: "/api/v1/fs/folders/root/children?sort=size", expectedCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := do(t, router, http.MethodGet, tt.path, nil)
			require.Equal(t, tt.expectedCode, code)
			if tt.expectedIDs == nil {
				assert.False(t, env.Success)
				return
			}
			entries := decodeData[[]types.Entry](t, env)
			ids := make([]string, len(entries))
			for i, entry := range entries {
				ids[i] = entry.ID
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestEntryEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	code, env := do(t, router, http.MethodGet, "/api/v1/fs/entries/resume/content", nil)
	require.Equal(t, http.StatusOK, code)
	content := decodeData[map[string]any](t, env)
	assert.Len(t, content["checksum"], 64)

	code, _ = do(t, router, http.MethodGet, "/api/v1/fs/entries/documents/content", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = do(t, router, http.MethodGet, "/api/v1/fs/entries/missing/content", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, env = do(t, router, http.MethodGet, "/api/v1/fs/entries/localDiskC/metadata", nil)
	require.Equal(t, http.StatusOK, code)
	metadata := decodeData[types.Metadata](t, env)
	require.NotNil(t, metadata.ChildrenCount)
	assert.Equal(t, 3, *metadata.ChildrenCount)

	code, _ = do(t, router, http.MethodGet, "/api/v1/fs/entries/missing/metadata", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, env = do(t, router, http.MethodPost, "/api/v1/fs/entries/resume/open", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "my-cv", decodeData[types.Window](t, env).ID)

	code, _ = do(t, router, http.MethodPost, "/api/v1/fs/entries/readme/open", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestNavigation(t *testing.T) {
	router, _ := newTestRouter(t)

	code, env := do(t, router, http.MethodGet, "/api/v1/fs/navigation", nil)
	require.Equal(t, http.StatusOK, code)
	roots := decodeData[[]types.NavigationLink](t, env)
	require.Len(t, roots, 2)
	assert.True(t, roots[0].IsExpanded)

	code, env = do(t, router, http.MethodPost, "/api/v1/fs/navigation/localDiskC/toggle", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, decodeData[map[string]any](t, env)["is_expanded"])

	code, _ = do(t, router, http.MethodPost, "/api/v1/fs/navigation/missing/toggle", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestSearch(t *testing.T) {
	router, _ := newTestRouter(t)

	type hit struct {
		Entry       types.Entry `json:"entry"`
		Path        []string    `json:"path"`
		DisplayPath string      `json:"display_path"`
	}

	code, env := do(t, router, http.MethodGet, "/api/v1/fs/search?q=resume", nil)
	require.Equal(t, http.StatusOK, code)
	hits := decodeData[[]hit](t, env)
	require.Len(t, hits, 1)
	assert.Equal(t, "Resume.pdf", hits[0].Entry.Name)
	assert.Equal(t, "/Local Disk (C:)/Documents and Settings/Documents/Resume.pdf", hits[0].DisplayPath)

	code, env = do(t, router, http.MethodGet, "/api/v1/fs/search?q=resume&case_sensitive=true", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, decodeData[[]hit](t, env))

	code, env = do(t, router, http.MethodGet, "/api/v1/fs/search?q=Tekken+3.exe&mode=exact", nil)
	require.Equal(t, http.StatusOK, code)
	hits = decodeData[[]hit](t, env)
	require.Len(t, hits, 1)
	assert.Equal(t, []string{"Games (F:)", "Tekken 3.exe"}, hits[0].Path)

	for _, path := range []string{
		"/api/v1/fs/search",
		"/api/v1/fs/search?q=a&mode=fuzzy",
		"/api/v1/fs/search?q=a&case_sensitive=maybe",
	} {
		code, _ = do(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, code, path)
	}
}

func TestWindowLifecycle(t *testing.T) {
	router, desktop := newTestRouter(t)

	open := types.LaunchSpec{
		WindowID: "notepad",
		Title:    "Notepad",
		Content:  types.ContentRef{Component: "notepad"},
		X:        100,
		Y:        100,
		Width:    200,
		Height:   150,
	}
	code, env := do(t, router, http.MethodPost, "/api/v1/windows", open)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, 101, decodeData[types.Window](t, env).ZIndex)

	code, _ = do(t, router, http.MethodPost, "/api/v1/windows", types.LaunchSpec{WindowID: "bad"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = do(t, router, http.MethodPut, "/api/v1/windows/notepad/position", map[string]int{"x": 30, "y": 40})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 30, decodeData[types.Window](t, env).X)

	code, _ = do(t, router, http.MethodPut, "/api/v1/windows/missing/position", map[string]int{"x": 1, "y": 1})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, router, http.MethodPut, "/api/v1/windows/notepad/size", map[string]int{"width": 0, "height": 10})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, router, http.MethodPost, "/api/v1/windows/notepad/minimize", nil)
	require.Equal(t, http.StatusOK, code)
	code, env = do(t, router, http.MethodGet, "/api/v1/taskbar", nil)
	require.Equal(t, http.StatusOK, code)
	taskbar := decodeData[[]types.TaskbarItem](t, env)
	require.Len(t, taskbar, 1)
	assert.True(t, taskbar[0].Minimized)

	code, env = do(t, router, http.MethodPost, "/api/v1/windows/notepad/restore", nil)
	require.Equal(t, http.StatusOK, code)
	assert.False(t, decodeData[types.Window](t, env).Minimized)

	code, env = do(t, router, http.MethodDelete, "/api/v1/windows/notepad", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, decodeData[map[string]any](t, env)["removed"])
	assert.Equal(t, 0, desktop.Windows().Len())

	code, env = do(t, router, http.MethodDelete, "/api/v1/windows/notepad", nil)
	require.Equal(t, http.StatusOK, code, "closing an absent window succeeds")
	assert.Equal(t, false, decodeData[map[string]any](t, env)["removed"])
}

func TestWindowPointerDrag(t *testing.T) {
	router, desktop := newTestRouter(t)
	require.NoError(t, desktop.SetViewport(800, 600))
	desktop.OpenWindow(&types.Window{Movable: types.Movable{ID: "a", X: 100, Y: 100, Width: 200, Height: 150}})

	code, env := do(t, router, http.MethodPost, "/api/v1/windows/pointer/down",
		map[string]any{"id": "a", "x": 110, "y": 110, "button": 0})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "drag", decodeData[map[string]any](t, env)["mode"])

	code, env = do(t, router, http.MethodPost, "/api/v1/windows/pointer/move", map[string]int{"x": -40, "y": 710})
	require.Equal(t, http.StatusOK, code)
	moved := decodeData[struct {
		Applied  bool          `json:"applied"`
		Geometry types.Movable `json:"geometry"`
	}](t, env)
	assert.True(t, moved.Applied)
	assert.Equal(t, 0, moved.Geometry.X)
	assert.Equal(t, 450, moved.Geometry.Y)

	code, _ = do(t, router, http.MethodPost, "/api/v1/windows/pointer/up", nil)
	require.Equal(t, http.StatusOK, code)
	_, ok := desktop.WindowController().Active()
	assert.False(t, ok)

	tests := []struct {
		name         string
		body         map[string]any
		expectedCode int
	}{
		{name: "secondary button", body: map[string]any{"id": "a", "button": 2}, expectedCode: http.StatusBadRequest},
		{name: "missing window", body: map[string]any{"id": "missing"}, expectedCode: http.StatusNotFound},
		{name: "bad direction", body: map[string]any{"id": "a", "mode": "resize", "direction": "up"}, expectedCode: http.StatusBadRequest},
		{name: "bad mode", body: map[string]any{"id": "a", "mode": "spin"}, expectedCode: http.StatusBadRequest},
		{name: "resize", body: map[string]any{"id": "a", "mode": "resize", "direction": "se"}, expectedCode: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := do(t, router, http.MethodPost, "/api/v1/windows/pointer/down", tt.body)
			assert.Equal(t, tt.expectedCode, code)
		})
	}
}

func TestDialogs(t *testing.T) {
	router, desktop := newTestRouter(t)
	desktop.OpenWindow(&types.Window{Movable: types.Movable{ID: "notepad", Width: 100, Height: 100}})

	code, env := do(t, router, http.MethodPost, "/api/v1/dialogs/find",
		map[string]string{"mode": "replace", "instance_title": "Notepad", "correlation_id": "n1"})
	require.Equal(t, http.StatusCreated, code)
	dialog := decodeData[types.Dialog](t, env)
	assert.Equal(t, "n1", dialog.ID)
	assert.Equal(t, "Notepad - Find and Replace", dialog.Title)
	assert.Greater(t, dialog.ZIndex, 200)

	code, _ = do(t, router, http.MethodPost, "/api/v1/dialogs/find", map[string]string{"mode": "grep", "instance_title": "x"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, router, http.MethodPost, "/api/v1/dialogs",
		map[string]any{"id": "about", "type": "information", "width": 300, "height": 200})
	require.Equal(t, http.StatusCreated, code)
	code, _ = do(t, router, http.MethodPost, "/api/v1/dialogs", map[string]any{"type": "popup", "width": 1, "height": 1})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = do(t, router, http.MethodGet, "/api/v1/dialogs", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decodeData[[]types.Dialog](t, env), 2)
}

func TestPrompts(t *testing.T) {
	router, _ := newTestRouter(t)

	code, env := do(t, router, http.MethodPost, "/api/v1/prompts",
		types.PromptOptions{Kind: types.DialogConfirmation, Title: "Delete", Message: "Are you sure?"})
	require.Equal(t, http.StatusCreated, code)
	prompt := decodeData[types.Prompt](t, env)
	assert.Equal(t, "Yes", prompt.Options.ConfirmText)

	code, _ = do(t, router, http.MethodGet, "/api/v1/prompts/"+prompt.ID+"/wait?timeout=10ms", nil)
	assert.Equal(t, http.StatusRequestTimeout, code)

	code, env = do(t, router, http.MethodPost, "/api/v1/prompts/"+prompt.ID+"/resolve", map[string]bool{"confirmed": true})
	require.Equal(t, http.StatusOK, code)
	assert.True(t, decodeData[types.PromptResult](t, env).Confirmed)

	code, _ = do(t, router, http.MethodPost, "/api/v1/prompts/"+prompt.ID+"/resolve", map[string]bool{"confirmed": true})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, router, http.MethodPost, "/api/v1/prompts", types.PromptOptions{Kind: "find"})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestIconsAndStartMenu(t *testing.T) {
	router, _ := newTestRouter(t)

	code, env := do(t, router, http.MethodGet, "/api/v1/icons", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decodeData[[]types.DesktopIcon](t, env), 9)

	code, _ = do(t, router, http.MethodPut, "/api/v1/icons/paint/position", map[string]int{"x": 1, "y": 2})
	assert.Equal(t, http.StatusOK, code)
	code, _ = do(t, router, http.MethodPut, "/api/v1/icons/missing/position", map[string]int{"x": 1, "y": 2})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, router, http.MethodPost, "/api/v1/icons", types.DesktopIcon{ID: "paint", Title: "Paint"})
	assert.Equal(t, http.StatusConflict, code)

	code, env = do(t, router, http.MethodPost, "/api/v1/icons/recycle-bin/open", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "file-explorer1", decodeData[types.Window](t, env).ID)

	code, env = do(t, router, http.MethodPost, "/api/v1/start-menu/find/open", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "search", decodeData[types.Window](t, env).ID)

	code, env = do(t, router, http.MethodPost, "/api/v1/start-menu/shutdown/open", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Nothing to open", env.Message)

	code, _ = do(t, router, http.MethodPost, "/api/v1/start-menu/missing/open", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestSettingsEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	code, env := do(t, router, http.MethodPut, "/api/v1/settings/theme", map[string]string{"theme": "windows10"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "windows10", decodeData[types.Theme](t, env).ID)

	code, _ = do(t, router, http.MethodPut, "/api/v1/settings/theme", map[string]string{"theme": "beos"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, router, http.MethodPut, "/api/v1/settings/screen-saver",
		types.ScreenSaverSettings{TimeoutMinutes: 0, Type: types.ScreenSaverPipes})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = do(t, router, http.MethodPut, "/api/v1/settings/wallpaper",
		types.Wallpaper{Type: types.WallpaperImage, URL: "/clouds.png", Position: types.WallpaperTile})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, types.WallpaperTile, decodeData[types.Wallpaper](t, env).Position)

	code, env = do(t, router, http.MethodGet, "/api/v1/settings", nil)
	require.Equal(t, http.StatusOK, code)
	settings := decodeData[types.DesktopSettings](t, env)
	assert.Equal(t, "windows10", settings.Theme)

	code, env = do(t, router, http.MethodGet, "/api/v1/themes", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decodeData[[]types.Theme](t, env), 3)

	code, _ = do(t, router, http.MethodPost, "/api/v1/reset", nil)
	require.Equal(t, http.StatusOK, code)
	code, env = do(t, router, http.MethodGet, "/api/v1/themes/current", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "windows98", decodeData[types.Theme](t, env).ID)
}

func TestInvalidBody(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/windows", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWindowStream(t *testing.T) {
	router, desktop := newTestRouter(t)
	server := httptest.NewServer(router)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/api/v1/stream/windows", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	nextSnapshot := func() []types.Window {
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if data, ok := strings.CutPrefix(line, "data: "); ok {
				var snapshot []types.Window
				require.NoError(t, json.Unmarshal([]byte(data), &snapshot))
				return snapshot
			}
		}
	}

	assert.Empty(t, nextSnapshot(), "the current snapshot arrives first")

	desktop.OpenWindow(&types.Window{Movable: types.Movable{ID: "paint", Title: "Paint", Width: 100, Height: 100}})
	snapshot := nextSnapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "paint", snapshot[0].ID)
}
