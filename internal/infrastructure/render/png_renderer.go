package render

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"kaenpro_os/internal/domain/entities"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fixed high-resolution scale factor for the downloadable note image.
const pngScale = 3.0

// A4-ish page in CSS pixels before scaling.
const (
	pageWidth  = 794.0
	marginX    = 60.0
	rowHeight  = 30.0
	lineHeight = 1.4
)

// PNGInvoiceRenderer rasterizes an invoice document to a PNG at 3x scale on a
// white background, mirroring the note image the operators share over
// WhatsApp.
type PNGInvoiceRenderer struct{}

func NewPNGInvoiceRenderer() *PNGInvoiceRenderer {
	return &PNGInvoiceRenderer{}
}

func (r *PNGInvoiceRenderer) Render(ctx context.Context, doc entities.InvoiceDocument) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	height := 560.0 + rowHeight*float64(len(doc.Rows))
	dc := gg.NewContext(int(pageWidth*pngScale), int(height*pngScale))
	dc.SetHexColor("#ffffff")
	dc.Clear()

	faces, err := loadFaces()
	if err != nil {
		return nil, err
	}

	// All positions below are in page units; px maps them to the scaled
	// canvas. Font faces are already sized for the scaled canvas.
	px := func(v float64) float64 { return v * pngScale }
	left := px(marginX)
	right := px(pageWidth - marginX)
	y := 70.0

	dc.SetHexColor("#111111")
	dc.SetFontFace(faces.title)
	dc.DrawStringAnchored("KAEN PRO", left, px(y), 0, 0.5)
	dc.SetFontFace(faces.small)
	dc.SetHexColor("#9f9fa3")
	dc.DrawStringAnchored("CENTRO DE MANUTENÇÃO AUTOMOTIVA", left, px(y+24), 0, 0.5)

	dc.DrawStringAnchored("ORDEM DE SERVIÇO", right, px(y-16), 1, 0.5)
	dc.SetFontFace(faces.heading)
	dc.SetHexColor("#111111")
	dc.DrawStringAnchored(fmt.Sprintf("#%s", doc.OSNumber), right, px(y+8), 1, 0.5)
	dc.SetFontFace(faces.small)
	dc.SetHexColor("#9f9fa3")
	dc.DrawStringAnchored(doc.IssuedAt, right, px(y+30), 1, 0.5)

	y += 58
	dc.SetHexColor("#f4f4f5")
	dc.SetLineWidth(px(2))
	dc.DrawLine(left, px(y), right, px(y))
	dc.Stroke()

	y += 36
	dc.SetFontFace(faces.small)
	dc.SetHexColor("#9f9fa3")
	dc.DrawStringAnchored("PROPRIETÁRIO", left, px(y), 0, 0.5)
	dc.DrawStringAnchored("IDENTIFICAÇÃO VEICULAR", px(pageWidth/2), px(y), 0, 0.5)
	dc.SetFontFace(faces.body)
	dc.SetHexColor("#27272a")
	dc.DrawStringAnchored(doc.ClientName, left, px(y+24), 0, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("%s • %s", doc.VehiclePlate, doc.VehicleModel), px(pageWidth/2), px(y+24), 0, 0.5)
	if doc.VehicleKm != "" {
		dc.SetFontFace(faces.small)
		dc.SetHexColor("#9f9fa3")
		dc.DrawStringAnchored(fmt.Sprintf("%s KM RODADOS", doc.VehicleKm), px(pageWidth/2), px(y+46), 0, 0.5)
	}

	y += 76
	dc.SetFontFace(faces.small)
	dc.SetHexColor("#9f9fa3")
	dc.DrawStringAnchored("DISCRIMINAÇÃO TÉCNICA", left, px(y), 0, 0.5)
	dc.SetFontFace(faces.body)
	dc.SetHexColor("#52525b")
	dc.DrawStringWrapped(fmt.Sprintf("\"%s\"", doc.Narrative), left, px(y+18), 0, 0, right-left, lineHeight, gg.AlignLeft)

	y += 92
	qtyX := px(pageWidth - 220)
	dc.SetFontFace(faces.small)
	dc.SetHexColor("#9f9fa3")
	dc.DrawStringAnchored("DESCRIÇÃO DO ITEM", left, px(y), 0, 0.5)
	dc.DrawStringAnchored("QTD", qtyX, px(y), 0.5, 0.5)
	dc.DrawStringAnchored("VALOR PARCIAL", right, px(y), 1, 0.5)
	y += 12
	dc.SetHexColor("#f4f4f5")
	dc.DrawLine(left, px(y), right, px(y))
	dc.Stroke()

	for _, row := range doc.Rows {
		y += rowHeight
		if row.Labor {
			dc.SetFontFace(faces.bodyBold)
			dc.SetHexColor("#111111")
		} else {
			dc.SetFontFace(faces.body)
			dc.SetHexColor("#3f3f46")
		}
		dc.DrawStringAnchored(row.Description, left, px(y), 0, 0.5)
		dc.DrawStringAnchored(formatQuantity(row.Quantity), qtyX, px(y), 0.5, 0.5)
		dc.DrawStringAnchored(formatBRL(row.Amount), right, px(y), 1, 0.5)
	}

	y += 44
	dc.SetHexColor("#f4f4f5")
	dc.DrawLine(left, px(y), right, px(y))
	dc.Stroke()
	y += 34
	dc.SetFontFace(faces.small)
	dc.SetHexColor("#9f9fa3")
	dc.DrawStringAnchored("KAENPRO MOTORS • QUALIDADE EM PRIMEIRO LUGAR", left, px(y+14), 0, 0.5)
	dc.DrawStringAnchored("VALOR TOTAL DO INVESTIMENTO", right, px(y-8), 1, 0.5)
	dc.SetFontFace(faces.total)
	dc.SetHexColor("#111111")
	dc.DrawStringAnchored(formatBRL(doc.TotalValue), right, px(y+28), 1, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		log.Printf("[invoice][renderer] png encode failed os_number=%s err=%v", doc.OSNumber, err)
		return nil, err
	}
	return buf.Bytes(), nil
}

type faceSet struct {
	title    font.Face
	heading  font.Face
	total    font.Face
	body     font.Face
	bodyBold font.Face
	small    font.Face
}

// loadFaces builds the Go font faces already sized for the 3x canvas, so no
// glyph ever renders at screen resolution and gets upscaled.
func loadFaces() (faceSet, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return faceSet{}, err
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return faceSet{}, err
	}

	newFace := func(f *opentype.Font, size float64) (font.Face, error) {
		return opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size * pngScale,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	var fs faceSet
	if fs.title, err = newFace(bold, 26); err != nil {
		return faceSet{}, err
	}
	if fs.heading, err = newFace(bold, 20); err != nil {
		return faceSet{}, err
	}
	if fs.total, err = newFace(bold, 30); err != nil {
		return faceSet{}, err
	}
	if fs.body, err = newFace(regular, 13); err != nil {
		return faceSet{}, err
	}
	if fs.bodyBold, err = newFace(bold, 13); err != nil {
		return faceSet{}, err
	}
	if fs.small, err = newFace(regular, 10); err != nil {
		return faceSet{}, err
	}
	return fs, nil
}
