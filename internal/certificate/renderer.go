package certificate

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/farhananowshin/SkillBridge/internal/service"
)

const (
	pageWidth  = 1400
	pageHeight = 990
)

var (
	inkColor    = color.NRGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 0xff}
	accentColor = color.NRGBA{R: 0x1f, G: 0x6f, B: 0xeb, A: 0xff}
	paperColor  = color.NRGBA{R: 0xfd, G: 0xfc, B: 0xf7, A: 0xff}
)

// Renderer draws completion certificates as PNG documents. Fonts are
// parsed once at construction; Render itself is stateless and safe
// for concurrent use since every call gets its own drawing context.
type Renderer struct {
	titleFace  font.Face
	nameFace   font.Face
	bodyFace   font.Face
	labelFace  font.Face
	footerFace font.Face
}

func NewRenderer() (*Renderer, error) {
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	italic, err := truetype.Parse(goitalic.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse italic font: %w", err)
	}

	face := func(f *truetype.Font, size float64) font.Face {
		return truetype.NewFace(f, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	return &Renderer{
		titleFace:  face(bold, 72),
		nameFace:   face(bold, 56),
		bodyFace:   face(regular, 28),
		labelFace:  face(italic, 24),
		footerFace: face(regular, 20),
	}, nil
}

func (r *Renderer) Render(data service.CertificateData) ([]byte, error) {
	dc := gg.NewContext(pageWidth, pageHeight)

	dc.SetColor(paperColor)
	dc.Clear()

	// Double border
	dc.SetColor(accentColor)
	dc.SetLineWidth(6)
	dc.DrawRectangle(30, 30, pageWidth-60, pageHeight-60)
	dc.Stroke()
	dc.SetLineWidth(2)
	dc.DrawRectangle(46, 46, pageWidth-92, pageHeight-92)
	dc.Stroke()

	cx := float64(pageWidth) / 2

	dc.SetColor(inkColor)
	dc.SetFontFace(r.titleFace)
	drawCentered(dc, "Certificate of Completion", cx, 190)

	dc.SetFontFace(r.labelFace)
	drawCentered(dc, "This is to certify that", cx, 300)

	dc.SetColor(accentColor)
	dc.SetFontFace(r.nameFace)
	drawCentered(dc, data.StudentName, cx, 400)

	dc.SetColor(inkColor)
	dc.SetLineWidth(1.5)
	nameWidth, _ := dc.MeasureString(data.StudentName)
	dc.DrawLine(cx-nameWidth/2-20, 420, cx+nameWidth/2+20, 420)
	dc.Stroke()

	dc.SetFontFace(r.labelFace)
	drawCentered(dc, "has successfully completed the course", cx, 500)

	dc.SetFontFace(r.nameFace)
	drawCentered(dc, data.CourseTitle, cx, 590)

	dc.SetFontFace(r.bodyFace)
	drawCentered(dc, fmt.Sprintf("Mentor: %s", data.MentorName), cx, 700)
	drawCentered(dc, data.CompletionDate.Format("January 2, 2006"), cx, 760)

	dc.SetFontFace(r.footerFace)
	drawCentered(dc, "SkillBridge", cx, pageHeight-90)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

func drawCentered(dc *gg.Context, text string, cx, y float64) {
	w, _ := dc.MeasureString(text)
	dc.DrawString(text, cx-w/2, y)
}
