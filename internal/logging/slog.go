package logging

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"regexp"
	"strings"
)

// Attribute keys shared by every log line of a run.
const (
	KeyOperation = "operation"
	KeyNamespace = "namespace"
	KeyResource  = "resource"
	KeyItemCount = "item_count"
	KeyStatus    = "status"
	KeyError     = "error"
	KeyHost      = "host"
	KeyToken     = "token"
	KeyOutput    = "output"

	// KeyConnection groups the host and token of a connection.
	KeyConnection = "connection"
	// KeyQuery groups the operation, resource and namespace of an API call.
	KeyQuery = "query"
)

// Status values.
const (
	StatusSuccess  = "success"
	StatusNotFound = "not_found"
	StatusError    = "error"
)

const redactedIP = "<redacted-ip>"

var (
	ipv4Regex = regexp.MustCompile(`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`)

	// Full, compressed and bracketed IPv6 forms.
	ipv6Regex = regexp.MustCompile(`\[?([0-9a-fA-F]{0,4}:){2,7}[0-9a-fA-F]{0,4}\]?`)
)

// Operation returns the API verb attribute ("get", "list").
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Namespace returns the namespace attribute.
func Namespace(ns string) slog.Attr {
	return slog.String(KeyNamespace, ns)
}

// Resource returns the Kubernetes resource attribute ("namespaces", "pods").
func Resource(resource string) slog.Attr {
	return slog.String(KeyResource, resource)
}

// Query groups the attributes describing one API call.
func Query(op, resource, namespace string) slog.Attr {
	return slog.Group(KeyQuery,
		slog.String(KeyOperation, op),
		slog.String(KeyResource, resource),
		slog.String(KeyNamespace, namespace))
}

// ItemCount returns the number of records an API call returned.
func ItemCount(n int) slog.Attr {
	return slog.Int(KeyItemCount, n)
}

// Status returns the outcome attribute; use one of the Status* values.
func Status(status string) slog.Attr {
	return slog.String(KeyStatus, status)
}

// Output returns the output format attribute.
func Output(format string) slog.Attr {
	return slog.String(KeyOutput, format)
}

// Err returns the error attribute. A nil error yields an empty value.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

// SanitizedErr is Err with IP addresses redacted. client-go errors embed the
// request URL, so API call failures are logged through it.
func SanitizedErr(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, redactIPs(err.Error()))
}

// Host returns the API server attribute with IP addresses redacted.
func Host(host string) slog.Attr {
	return slog.String(KeyHost, SanitizeHost(host))
}

// Token returns an attribute describing a bearer token by length only.
func Token(token string) slog.Attr {
	return slog.String(KeyToken, SanitizeToken(token))
}

// Connection groups the sanitized host and masked token of a connection.
func Connection(host, token string) slog.Attr {
	return slog.Group(KeyConnection, Host(host), Token(token))
}

// SanitizeHost redacts IP addresses from an API server address. Hostnames,
// schemes and ports are kept.
//
//	"https://192.168.1.100:6443"           -> "https://<redacted-ip>:6443"
//	"https://[2001:db8::1]:6443"           -> "https://<redacted-ip>:6443"
//	"https://api.cluster.example.com:6443" -> unchanged
//	"10.0.0.1:6443"                        -> "<redacted-ip>:6443"
//	""                                     -> "<empty>"
func SanitizeHost(host string) string {
	if host == "" {
		return "<empty>"
	}

	u, err := url.Parse(host)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return redactIPs(host)
	}
	if net.ParseIP(u.Hostname()) == nil {
		return host
	}

	redacted := redactedIP
	if port := u.Port(); port != "" {
		redacted += ":" + port
	}
	return strings.Replace(host, u.Host, redacted, 1)
}

// SanitizeToken masks a token as its length. No prefix is kept: even a JWT
// header identifies the issuer.
func SanitizeToken(token string) string {
	if token == "" {
		return "<empty>"
	}
	return fmt.Sprintf("[token:%d chars]", len(token))
}

func redactIPs(s string) string {
	s = ipv4Regex.ReplaceAllString(s, redactedIP)
	return ipv6Regex.ReplaceAllString(s, redactedIP)
}
