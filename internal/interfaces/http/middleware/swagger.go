package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aamirshehzad9/MISoft-sub001/internal/interfaces/http/dto"
)

// SwaggerConfig controls access to the API documentation endpoints
type SwaggerConfig struct {
	// Enabled serves the docs at all; when false the routes answer 404 so
	// the deployment does not advertise their existence.
	Enabled bool
	// RequireAuth gates the docs behind a signed-in dashboard session
	RequireAuth bool
	// AllowedIPs whitelists callers, single IPs or CIDR ranges. Empty
	// means no IP restriction.
	AllowedIPs []string
}

// ipAllowlist is a parsed SwaggerConfig.AllowedIPs
type ipAllowlist struct {
	ips  []net.IP
	nets []*net.IPNet
}

func parseAllowlist(entries []string) ipAllowlist {
	var al ipAllowlist
	for _, entry := range entries {
		if strings.Contains(entry, "/") {
			if _, network, err := net.ParseCIDR(entry); err == nil {
				al.nets = append(al.nets, network)
			}
			continue
		}
		if ip := net.ParseIP(entry); ip != nil {
			al.ips = append(al.ips, ip)
		}
	}
	return al
}

func (al ipAllowlist) contains(ip net.IP) bool {
	if ip == nil {
		return false
	}
	for _, allowed := range al.ips {
		if allowed.Equal(ip) {
			return true
		}
	}
	for _, network := range al.nets {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

// SwaggerProtection guards the documentation routes. The checks stack:
// disabled beats everything, then the IP allowlist, then the session
// requirement. sessionMiddleware is only consulted when RequireAuth is set.
func SwaggerProtection(cfg SwaggerConfig, sessionMiddleware gin.HandlerFunc) gin.HandlerFunc {
	allowlist := parseAllowlist(cfg.AllowedIPs)
	restrictByIP := len(cfg.AllowedIPs) > 0

	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.AbortWithStatusJSON(http.StatusNotFound, dto.NewErrorResponse(
				dto.ErrCodeNotFound, "API documentation is not available"))
			return
		}

		if restrictByIP && !allowlist.contains(clientIP(c)) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
				dto.ErrCodeForbidden, "Access to API documentation is restricted"))
			return
		}

		if cfg.RequireAuth && sessionMiddleware != nil {
			sessionMiddleware(c)
			if c.IsAborted() {
				return
			}
		}

		c.Next()
	}
}

// clientIP resolves the caller address, falling back to RemoteAddr when
// gin's trusted-proxy handling yields nothing parseable.
func clientIP(c *gin.Context) net.IP {
	if ip := net.ParseIP(c.ClientIP()); ip != nil {
		return ip
	}

	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		host = c.Request.RemoteAddr
	}
	return net.ParseIP(host)
}
