package endpoint

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/docker/go-connections/nat"
	"github.com/go-playground/validator/v10"
)

// DefaultPort is used when a target does not name a port.
const DefaultPort = 80

var validate = validator.New()

// Endpoint is a TCP listener to wait for.
type Endpoint struct {
	Host string `validate:"required"`
	Port int    `validate:"min=1,max=65535"`
}

// UsageError reports a missing or malformed target.
type UsageError struct {
	Input  string
	Reason string
}

func (e *UsageError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("invalid target: %s", e.Reason)
	}
	return fmt.Sprintf("invalid target %q: %s", e.Input, e.Reason)
}

func (e *UsageError) ExitCode() int {
	return 2
}

// Parse reads a target of the form host, host:port, [ipv6] or [ipv6]:port.
// Unbracketed targets are split on the first colon.
func Parse(target string) (*Endpoint, error) {
	if strings.TrimSpace(target) == "" {
		return nil, &UsageError{Reason: "target must not be empty"}
	}
	host, rawPort, err := splitHostPort(target)
	if err != nil {
		return nil, &UsageError{Input: target, Reason: err.Error()}
	}

	port := DefaultPort
	if rawPort != "" {
		port, err = nat.ParsePort(rawPort)
		if err != nil {
			return nil, &UsageError{Input: target, Reason: fmt.Sprintf("invalid port %q", rawPort)}
		}
	}

	e := &Endpoint{Host: strings.TrimSpace(host), Port: port}
	if err := e.Validate(); err != nil {
		return nil, &UsageError{Input: target, Reason: err.Error()}
	}
	return e, nil
}

func splitHostPort(target string) (string, string, error) {
	if !strings.HasPrefix(target, "[") {
		host, port, _ := strings.Cut(target, ":")
		return host, port, nil
	}
	end := strings.IndexByte(target, ']')
	if end < 0 {
		return "", "", errors.New("missing ']' in address")
	}
	host, rest := target[1:end], target[end+1:]
	if rest == "" {
		return host, "", nil
	}
	if rest[0] != ':' {
		return "", "", fmt.Errorf("unexpected %q after address", rest)
	}
	return host, rest[1:], nil
}

func (e *Endpoint) Validate() error {
	err := validate.Struct(e)
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) || len(vErrs) == 0 {
		return err
	}
	switch vErrs[0].Field() {
	case "Host":
		return errors.New("host must not be empty")
	case "Port":
		return fmt.Errorf("port must be between 1 and 65535, got %d", e.Port)
	}
	return err
}

func (e *Endpoint) String() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}
