package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/maxviazov/cricket-records-service/internal/service"
)

// explain flattens validation failures into one readable line per field.
func explain(err error) error {
	fields := service.FieldErrors(err)
	if len(fields) == 0 {
		return err
	}
	var b strings.Builder
	b.WriteString("invalid request:")
	for _, fe := range fields {
		fmt.Fprintf(&b, "\n  %s: %s", fe.Field, fe.Message)
	}
	return errors.New(b.String())
}
