package main

import (
	"context"
	"fmt"
	"io"

	"github.com/Chakshu1409/fnp-integrations/internal/service"
)

// issueToken writes a bearer token for subject to w, one line, ready for an
// "Authorization: Bearer" header.
func issueToken(ctx context.Context, auth service.AuthService, subject string, w io.Writer) error {
	token, err := auth.CreateToken(ctx, subject)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, token.SignedString)
	return err
}
