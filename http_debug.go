package cartes

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog/log"
)

// debugTransport logs full request/response dumps for troubleshooting
// API communication problems: malformed requests, unexpected response
// shapes, auth issues.
//
// Enabled by WithDebugLogging or by setting CARTES_DEBUG=true (or the
// general DEBUG=true). Dumps include headers and bodies, credentials
// included, so keep it out of production environments.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}

	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks whether HTTP debug logging should be
// enabled from the environment: CARTES_DEBUG=true for targeted client
// debugging, or DEBUG=true as the broader development flag.
func debugLoggingRequested() bool {
	return os.Getenv("CARTES_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
