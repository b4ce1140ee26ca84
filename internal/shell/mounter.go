// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package shell

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/viewer-shell/models"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	// MountPointID is the id of the element the UI tree is mounted into.
	MountPointID = "root"

	// propsScriptID identifies the injected startup script.
	propsScriptID = "viewer-startup-props"

	// mountedAttr marks the mount point once the props are injected.
	mountedAttr = "data-viewer-mounted"
)

type documentMounter struct {
	document []byte
}

// NewDocumentMounter reads the SPA document at indexPath and returns a
// [Mounter] that injects startup properties into copies of it.
func NewDocumentMounter(indexPath string) (Mounter, error) {
	document, err := os.ReadFile(indexPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingDocument, err)
	}

	return NewDocumentMounterFromBytes(document)
}

// NewDocumentMounterFromBytes is like [NewDocumentMounter] but takes the
// document contents directly.
func NewDocumentMounterFromBytes(document []byte) (Mounter, error) {
	if _, err := html.Parse(bytes.NewReader(document)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsingDocument, err)
	}

	return &documentMounter{document: bytes.Clone(document)}, nil
}

// Mount implements [Mounter].
//
// The startup script assigns window.config and window.__APP_PROPS__. It is
// inserted as the first child of <head> so that it runs before any bundle.
// The HTML parser always synthesizes a head element.
func (m *documentMounter) Mount(ctx context.Context, w io.Writer, props models.StartupProps) error {
	doc, err := html.Parse(bytes.NewReader(m.document))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrParsingDocument, err)
	}

	mountPoint := findElementByID(doc, MountPointID)
	if mountPoint == nil {
		return fmt.Errorf("%w: no element with id %q", ErrMountPointNotFound, MountPointID)
	}

	script, err := startupScript(props)
	if err != nil {
		return err
	}

	head := findElement(doc, atom.Head)
	head.InsertBefore(script, head.FirstChild)
	mountPoint.Attr = append(mountPoint.Attr, html.Attribute{Key: mountedAttr, Val: "true"})

	var buf bytes.Buffer
	if err = html.Render(&buf, doc); err != nil {
		return fmt.Errorf("%w: %w", ErrRenderingDocument, err)
	}
	if _, err = w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %w", ErrRenderingDocument, err)
	}

	return nil
}

// startupScript builds the <script> element carrying props. encoding/json
// escapes <, > and & so the payload cannot terminate the script element.
func startupScript(props models.StartupProps) (*html.Node, error) {
	configJSON, err := json.Marshal(props.Config)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingProps, err)
	}
	propsJSON, err := json.Marshal(props)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingProps, err)
	}

	script := &html.Node{
		Type:     html.ElementNode,
		Data:     atom.Script.String(),
		DataAtom: atom.Script,
		Attr:     []html.Attribute{{Key: "id", Val: propsScriptID}},
	}
	script.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: fmt.Sprintf("window.config = %s;\nwindow.__APP_PROPS__ = %s;", configJSON, propsJSON),
	})

	return script, nil
}

func findElementByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, attr := range n.Attr {
			if attr.Namespace == "" && attr.Key == "id" && attr.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElementByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}
