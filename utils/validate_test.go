package utils

import (
	"testing"

	"github.com/frankban/quicktest"
)

func TestValidateEmail_AcceptsConventionalAddresses(t *testing.T) {
	c := quicktest.New(t)
	valid := []string{
		"a@b.com",
		"a@b.c",
		"user@domain.co.uk",
		"first.last@example.com",
		"user+tag@example.org",
		"user_name%x@sub.domain.net",
		"1234@numbers.io",
	}
	for _, email := range valid {
		c.Assert(ValidateEmail(email), quicktest.IsTrue, quicktest.Commentf("email %q", email))
	}
}

func TestValidateEmail_RejectsMalformedAddresses(t *testing.T) {
	c := quicktest.New(t)
	invalid := []string{
		"",
		"a@b",
		"invalid.email",
		"no-at-sign",
		"a@@b.com",
		"a@b@c.com",
		"a@b.com.",
		"a@.com",
		"@b.com",
		"a@",
		"a b@c.com",
		"a@b c.com",
		"a@b.c0m",
	}
	for _, email := range invalid {
		c.Assert(ValidateEmail(email), quicktest.IsFalse, quicktest.Commentf("email %q", email))
	}
}
