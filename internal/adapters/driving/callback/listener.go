// Package callback implements the local OAuth redirect listener.
//
// The SSO provider redirects the operator's browser to a local port exactly
// once per auth attempt, so this is deliberately a raw accept-once TCP
// listener rather than an HTTP server: it reads one request's header lines,
// answers with a static page and stops listening.
package callback

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"net/url"
	"strings"

	"github.com/nullsec-labs/evecrop/internal/core/domain"
	"github.com/nullsec-labs/evecrop/internal/core/ports/driven"
	"github.com/nullsec-labs/evecrop/internal/logger"
)

// pathPrefix is the request-line prefix carrying the callback query string.
const pathPrefix = "GET /esi/callback?"

// response is the fixed page shown in the operator's browser.
const response = "HTTP/1.1 200 OK\r\n" +
	"Content-Type: text/html; charset=UTF-8\r\n" +
	"\r\n" +
	"<html><body>Authentication complete. You can close this tab.</body></html>\r\n"

// Ensure Listener implements the interface.
var _ driven.CallbackListener = Listener{}

// Listener waits for the single OAuth redirect on a local port.
type Listener struct{}

// Await binds addr, accepts one connection carrying the callback, answers it
// and stops listening. It blocks until the redirect arrives.
//
// A bind failure returns ErrBind. A connection whose headers end without a
// recognized callback line, or with a malformed query string, returns
// ErrParse; the caller treats both as fatal to the auth attempt.
func (Listener) Await(addr string) (*domain.CallbackResult, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrBind, addr, err)
	}
	defer ln.Close()
	logger.Debug("callback listener waiting on %s", addr)

	for {
		conn, err := ln.Accept()
		if err != nil {
			logger.Warn("callback accept failed: %v", err)
			continue
		}
		// Single-shot: the first accepted connection decides the outcome.
		return handle(conn)
	}
}

// handle reads one request's header lines, answers and closes.
func handle(conn net.Conn) (*domain.CallbackResult, error) {
	defer conn.Close()

	var (
		result   *domain.CallbackResult
		parseErr error
	)
	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadString('\n')
		if strings.HasPrefix(line, pathPrefix) {
			result, parseErr = parseRequestLine(line)
		}
		if line == "\r\n" {
			// Blank line ends the HTTP headers.
			break
		}
		if err != nil {
			if err != io.EOF {
				logger.Warn("callback read failed: %v", err)
			}
			break
		}
	}

	if _, err := conn.Write([]byte(response)); err != nil {
		logger.Warn("callback response write failed: %v", err)
	}

	if parseErr != nil {
		return nil, parseErr
	}
	if result == nil {
		return nil, fmt.Errorf("%w: no callback in request", domain.ErrParse)
	}
	logger.Debug("callback received, state=%s", result.State)
	return result, nil
}

// parseRequestLine extracts code and state from a callback request line of
// the form "GET /esi/callback?code=..&state=.. HTTP/1.1".
func parseRequestLine(line string) (*domain.CallbackResult, error) {
	rest := strings.TrimPrefix(line, pathPrefix)
	query, _, found := strings.Cut(rest, " ")
	if !found {
		return nil, fmt.Errorf("%w: malformed request line", domain.ErrParse)
	}
	values, err := url.ParseQuery(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}
	if values.Get("code") == "" {
		return nil, fmt.Errorf("%w: missing code parameter", domain.ErrParse)
	}
	return &domain.CallbackResult{
		Code:  values.Get("code"),
		State: values.Get("state"),
	}, nil
}
