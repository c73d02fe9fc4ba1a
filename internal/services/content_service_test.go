package services

import (
	"strings"
	"testing"
	"testing/fstest"
)

const validContent = `
business:
  name: Wirral Carpet Cleaning
  phone: "0151 000 0000"
  phone_digits: "01510000000"
services:
  - title: Domestic
    description: Homes
faq:
  - question: How long?
    answer: A few hours.
testimonials:
  - name: Jo
    rating: 5
    text: Great
service_areas: [Wirral, Chester]
landing:
  reviews:
    - name: Lee
      rating: 5
      text: Spotless
`

func TestLoadContent(t *testing.T) {
	t.Run("valid catalog", func(t *testing.T) {
		fsys := fstest.MapFS{"site.yaml": {Data: []byte(validContent)}}
		content, err := LoadContent(fsys, "site.yaml")
		if err != nil {
			t.Fatalf("Expected no error, but got %v", err)
		}
		if content.Business.Name != "Wirral Carpet Cleaning" || len(content.ServiceAreas) != 2 {
			t.Errorf("Unexpected content %+v", content)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadContent(fstest.MapFS{}, "site.yaml"); err == nil {
			t.Fatal("Expected an error, but got nil")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		fsys := fstest.MapFS{"site.yaml": {Data: []byte("business: [")}}
		if _, err := LoadContent(fsys, "site.yaml"); err == nil {
			t.Fatal("Expected an error, but got nil")
		}
	})

	t.Run("all problems are reported", func(t *testing.T) {
		bad := strings.Replace(validContent, "rating: 5", "rating: 9", 1)
		bad = strings.Replace(bad, "  name: Wirral Carpet Cleaning\n", "", 1)
		fsys := fstest.MapFS{"site.yaml": {Data: []byte(bad)}}
		_, err := LoadContent(fsys, "site.yaml")
		if err == nil {
			t.Fatal("Expected an error, but got nil")
		}
		for _, want := range []string{"business.name", "testimonials[0].rating"} {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("Expected %q in %v", want, err)
			}
		}
	})

	t.Run("phone digits are checked", func(t *testing.T) {
		for _, digits := range []string{"", "tel:0151", "0151 000"} {
			bad := strings.Replace(validContent, `"01510000000"`, `"`+digits+`"`, 1)
			fsys := fstest.MapFS{"site.yaml": {Data: []byte(bad)}}
			_, err := LoadContent(fsys, "site.yaml")
			if err == nil || !strings.Contains(err.Error(), "business.phone_digits") {
				t.Errorf("Digits %q: expected a phone_digits error, but got %v", digits, err)
			}
		}
	})

	t.Run("landing reviews need a rating", func(t *testing.T) {
		bad := strings.Replace(validContent, "      rating: 5\n      text: Spotless", "      text: Spotless", 1)
		fsys := fstest.MapFS{"site.yaml": {Data: []byte(bad)}}
		_, err := LoadContent(fsys, "site.yaml")
		if err == nil || !strings.Contains(err.Error(), "landing.reviews[0].rating") {
			t.Errorf("Expected a landing review rating error, but got %v", err)
		}
	})
}
