package handlers

import (
	"fmt"
	"html/template"
	"math"
	"strings"

	"wirralclean/internal/models"
	"wirralclean/internal/services"

	"github.com/shopspring/decimal"
)

const (
	wheelSize   = 400.0
	wheelCenter = wheelSize / 2
	wheelRadius = wheelSize/2 - 4
)

// wheelSlice is the SVG geometry for one wheel segment.
type wheelSlice struct {
	Segment  models.Segment
	Path     string
	TextX    float64
	TextY    float64
	MidAngle float64
	Lines    []string
}

func polarToXY(angleDeg, r float64) (float64, float64) {
	rad := (angleDeg - 90) * math.Pi / 180
	return wheelCenter + r*math.Cos(rad), wheelCenter + r*math.Sin(rad)
}

func wheelSlices(segments []models.Segment) []wheelSlice {
	segAngle := 360.0 / float64(len(segments))
	out := make([]wheelSlice, 0, len(segments))
	for i, seg := range segments {
		a1 := float64(i) * segAngle
		x1, y1 := polarToXY(a1, wheelRadius)
		x2, y2 := polarToXY(a1+segAngle, wheelRadius)
		mid := a1 + segAngle/2
		tx, ty := polarToXY(mid, wheelRadius*0.6)
		out = append(out, wheelSlice{
			Segment:  seg,
			Path:     fmt.Sprintf("M %.2f %.2f L %.2f %.2f A %.2f %.2f 0 0 1 %.2f %.2f Z", wheelCenter, wheelCenter, x1, y1, wheelRadius, wheelRadius, x2, y2),
			TextX:    tx,
			TextY:    ty,
			MidAngle: mid,
			Lines:    strings.Split(seg.Label, "\n"),
		})
	}
	return out
}

// dict builds a map from alternating keys and values, for passing several
// values into a nested template.
func dict(pairs ...interface{}) (map[string]interface{}, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	out := make(map[string]interface{}, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
		}
		out[key] = pairs[i+1]
	}
	return out, nil
}

// TemplateFuncs are the helpers available to the page templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"price": func(d decimal.Decimal) string { return services.FormatPrice(d) },
		"dict":  dict,
	}
}
