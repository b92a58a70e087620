// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// documentXML is the archive member holding the document body.
const documentXML = "word/document.xml"

// DocxReader reads paragraphs from a DOCX file. A DOCX is a zip archive; the
// body lives in word/document.xml as w:p paragraph elements whose w:t runs
// carry the text.
type DocxReader struct{}

// Paragraphs opens the archive and returns one string per w:p element, with
// the text runs of each paragraph concatenated and trimmed.
func (d *DocxReader) Paragraphs(path string) ([]string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != documentXML {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", documentXML, err)
		}
		defer rc.Close()
		return docxParagraphs(rc)
	}

	return nil, fmt.Errorf("no %s in archive", documentXML)
}

// docxParagraphs walks the document XML token stream, collecting the w:t text
// of each w:p element. w:tab and w:br inside a run become a space so adjacent
// runs do not glue together.
func docxParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var paragraphs []string
	var current strings.Builder
	inParagraph := false

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing document XML: %w", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "t":
				if !inParagraph {
					continue
				}
				var text string
				if err := dec.DecodeElement(&text, &el); err != nil {
					return nil, fmt.Errorf("decoding text run: %w", err)
				}
				current.WriteString(text)
			case "tab", "br":
				if inParagraph {
					current.WriteByte(' ')
				}
			}
		case xml.EndElement:
			if el.Name.Local == "p" && inParagraph {
				paragraphs = append(paragraphs, strings.TrimSpace(current.String()))
				inParagraph = false
			}
		}
	}

	return paragraphs, nil
}
