package resume

import (
	"image"

	"git.sr.ht/~sbinet/gg"
)

// Placeholder draws a stand-in resume page when no image is configured:
// a header with the name and headline, then one block of text bars per
// heading.
func Placeholder(name, headline string, headings []string) image.Image {
	const w, h = 425, 550 // US letter at 50 dpi

	dc := gg.NewContext(w, h)
	dc.SetHexColor("#ffffff")
	dc.Clear()

	dc.SetHexColor("#282a36")
	dc.DrawRectangle(0, 0, w, 70)
	dc.Fill()

	dc.SetHexColor("#f8f8f2")
	dc.DrawStringAnchored(name, w/2, 30, 0.5, 0.5)
	dc.SetHexColor("#bd93f9")
	dc.DrawStringAnchored(headline, w/2, 50, 0.5, 0.5)

	y := 95.0
	for _, heading := range headings {
		if y > h-40 {
			break
		}
		dc.SetHexColor("#44475a")
		dc.DrawString(heading, 30, y)
		dc.SetHexColor("#bd93f9")
		dc.DrawLine(30, y+5, w-30, y+5)
		dc.SetLineWidth(1)
		dc.Stroke()
		y += 18
		for i, frac := range []float64{0.9, 0.75, 0.82} {
			dc.SetHexColor("#d0d0d8")
			dc.DrawRoundedRectangle(30, y+float64(i)*12, (w-60)*frac, 6, 3)
			dc.Fill()
		}
		y += 52
	}
	return dc.Image()
}
