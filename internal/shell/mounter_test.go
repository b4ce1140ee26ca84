package shell

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/viewer-shell/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const indexHTML = `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>Viewer</title>
    <script src="/static/app.bundle.js" defer></script>
  </head>
  <body>
    <noscript>You need to enable JavaScript to run this app.</noscript>
    <div id="root"></div>
  </body>
</html>`

func testProps() models.StartupProps {
	return models.NewStartupProps(
		models.Config{"defaultDataSourceName": "dicomweb", "dataSources": []any{map[string]any{"name": "dicomweb"}}},
		[]models.Extension{{ID: "@ohif/extension-default"}},
		[]models.Mode{{ID: "@ohif/mode-longitudinal"}},
	)
}

// scriptPayload extracts the JSON assigned to window.__APP_PROPS__ from the
// rendered document.
func scriptPayload(t *testing.T, rendered string) models.StartupProps {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(rendered))
	require.NoError(t, err)

	script := findElementByID(doc, propsScriptID)
	require.NotNil(t, script, "startup script must be injected")
	require.NotNil(t, script.FirstChild)

	text := script.FirstChild.Data
	const marker = "window.__APP_PROPS__ = "
	idx := strings.Index(text, marker)
	require.GreaterOrEqual(t, idx, 0)
	payload := strings.TrimSuffix(text[idx+len(marker):], ";")

	var props models.StartupProps
	require.NoError(t, json.Unmarshal([]byte(payload), &props))
	return props
}

func TestDocumentMounter_InjectsProps(t *testing.T) {
	m, err := NewDocumentMounterFromBytes([]byte(indexHTML))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, m.Mount(context.Background(), &out, testProps()))

	rendered := out.String()
	assert.Contains(t, rendered, `window.config = {"dataSources":[{"name":"dicomweb"}],"defaultDataSourceName":"dicomweb"};`)
	assert.Contains(t, rendered, `data-viewer-mounted="true"`)

	props := scriptPayload(t, rendered)
	assert.Equal(t, "dicomweb", props.Config["defaultDataSourceName"])
	assert.Equal(t, []models.Extension{{ID: "@ohif/extension-default"}}, props.DefaultExtensions)
	assert.Equal(t, []models.Mode{{ID: "@ohif/mode-longitudinal"}}, props.DefaultModes)
}

// TestDocumentMounter_ScriptRunsBeforeBundle verifies that the startup
// script precedes every other script of the document.
func TestDocumentMounter_ScriptRunsBeforeBundle(t *testing.T) {
	m, err := NewDocumentMounterFromBytes([]byte(indexHTML))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, m.Mount(context.Background(), &out, testProps()))

	rendered := out.String()
	assert.Less(t, strings.Index(rendered, propsScriptID), strings.Index(rendered, "app.bundle.js"))
}

// TestDocumentMounter_EscapesScriptTerminator verifies that config values
// cannot break out of the injected script element.
func TestDocumentMounter_EscapesScriptTerminator(t *testing.T) {
	m, err := NewDocumentMounterFromBytes([]byte(indexHTML))
	require.NoError(t, err)

	props := models.NewStartupProps(models.Config{"whiteLabeling": "</script><script>alert(1)</script>"}, nil, nil)

	var out bytes.Buffer
	require.NoError(t, m.Mount(context.Background(), &out, props))

	assert.NotContains(t, out.String(), "<script>alert(1)")
	assert.Equal(t, "</script><script>alert(1)</script>", scriptPayload(t, out.String()).Config["whiteLabeling"])
}

func TestDocumentMounter_AbsentConfig(t *testing.T) {
	m, err := NewDocumentMounterFromBytes([]byte(indexHTML))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, m.Mount(context.Background(), &out, models.NewStartupProps(nil, nil, nil)))

	assert.Contains(t, out.String(), "window.config = null;")
	props := scriptPayload(t, out.String())
	assert.Nil(t, props.Config)
	assert.Empty(t, props.DefaultExtensions)
}

// TestDocumentMounter_DocumentIsReusable verifies that each mount starts
// from the pristine document.
func TestDocumentMounter_DocumentIsReusable(t *testing.T) {
	m, err := NewDocumentMounterFromBytes([]byte(indexHTML))
	require.NoError(t, err)

	var first, second bytes.Buffer
	require.NoError(t, m.Mount(context.Background(), &first, testProps()))
	require.NoError(t, m.Mount(context.Background(), &second, testProps()))

	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, 1, strings.Count(second.String(), propsScriptID))
}

func TestDocumentMounter_MissingMountPoint(t *testing.T) {
	m, err := NewDocumentMounterFromBytes([]byte(`<html><body><div id="app"></div></body></html>`))
	require.NoError(t, err)

	var out bytes.Buffer
	err = m.Mount(context.Background(), &out, testProps())

	assert.ErrorIs(t, err, ErrMountPointNotFound)
	assert.Zero(t, out.Len(), "nothing must be written on failure")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestDocumentMounter_WriteFailure(t *testing.T) {
	m, err := NewDocumentMounterFromBytes([]byte(indexHTML))
	require.NoError(t, err)

	err = m.Mount(context.Background(), failingWriter{}, testProps())
	assert.ErrorIs(t, err, ErrRenderingDocument)
}

func TestDocumentMounter_UnencodableConfig(t *testing.T) {
	m, err := NewDocumentMounterFromBytes([]byte(indexHTML))
	require.NoError(t, err)

	var out bytes.Buffer
	err = m.Mount(context.Background(), &out, models.NewStartupProps(models.Config{"bad": make(chan int)}, nil, nil))
	assert.ErrorIs(t, err, ErrEncodingProps)
}

func TestNewDocumentMounter_FromFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(p, []byte(indexHTML), 0o600))

	m, err := NewDocumentMounter(p)
	require.NoError(t, err)
	require.NotNil(t, m)

	_, err = NewDocumentMounter(filepath.Join(t.TempDir(), "missing.html"))
	assert.ErrorIs(t, err, ErrReadingDocument)
}

// TestDocumentMounter_HeadlessDocument verifies that a fragment without a
// head still gets the startup script in the synthesized head.
func TestDocumentMounter_HeadlessDocument(t *testing.T) {
	m, err := NewDocumentMounterFromBytes([]byte(`<div id="root"></div>`))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, m.Mount(context.Background(), &out, testProps()))

	doc, err := html.Parse(strings.NewReader(out.String()))
	require.NoError(t, err)
	script := findElementByID(doc, propsScriptID)
	require.NotNil(t, script)
	require.NotNil(t, script.Parent)
	assert.Equal(t, "head", script.Parent.Data)
}
