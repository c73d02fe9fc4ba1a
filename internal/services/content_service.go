package services

import (
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
	"wirralclean/internal/models"
)

// LoadContent reads and validates the marketing content catalog.
func LoadContent(fsys fs.FS, name string) (*models.Content, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	var content models.Content
	if err := yaml.Unmarshal(b, &content); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := ValidateContent(&content); err != nil {
		return nil, err
	}
	return &content, nil
}

// ValidateContent checks the catalog has everything the pages render.
func ValidateContent(c *models.Content) error {
	var errs []string

	if c.Business.Name == "" {
		errs = append(errs, "business.name is required")
	}
	if c.Business.Phone == "" {
		errs = append(errs, "business.phone is required")
	}
	if !validPhoneDigits(c.Business.PhoneDigits) {
		errs = append(errs, "business.phone_digits must be digits, optionally with a leading +")
	}
	if len(c.Services) == 0 {
		errs = append(errs, "services must not be empty")
	}
	if len(c.FAQ) == 0 {
		errs = append(errs, "faq must not be empty")
	}
	for i, f := range c.FAQ {
		if f.Question == "" || f.Answer == "" {
			errs = append(errs, fmt.Sprintf("faq[%d] needs a question and an answer", i))
		}
	}
	for i, t := range c.Testimonials {
		if t.Rating < 1 || t.Rating > 5 {
			errs = append(errs, fmt.Sprintf("testimonials[%d].rating must be in [1,5]", i))
		}
	}
	for i, t := range c.Landing.Reviews {
		if t.Rating < 1 || t.Rating > 5 {
			errs = append(errs, fmt.Sprintf("landing.reviews[%d].rating must be in [1,5]", i))
		}
	}
	if len(c.ServiceAreas) == 0 {
		errs = append(errs, "service_areas must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("content validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validPhoneDigits(s string) bool {
	s = strings.TrimPrefix(s, "+")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
