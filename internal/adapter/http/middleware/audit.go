package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"brit-matcher/internal/core/domain"
	"brit-matcher/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// auditedRoute describes how a successful POST to a route is recorded.
// Anonymous routes keep neither a resource id nor the client address, so
// the audit trail cannot link a wallet or a payer to where it connected from.
type auditedRoute struct {
	action       domain.AuditAction
	resourceType string
	anonymous    bool
}

var auditedRoutes = map[string]auditedRoute{
	"/api/v1/brit/exchange":   {action: domain.AuditActionExchange, resourceType: "exchange", anonymous: true},
	"/api/v1/admin/addresses": {action: domain.AuditActionAddressImport, resourceType: "address_pool"},
}

// AuditLog records successful writes. Routes are matched on their registered pattern.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method != http.MethodPost {
			return
		}

		route, ok := auditedRoutes[c.FullPath()]
		if !ok {
			return
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		})

		entry := &domain.AuditLog{
			ID:           uuid.New(),
			Actor:        c.GetString(CtxOperator),
			Action:       route.action,
			ResourceType: route.resourceType,
			Details:      string(details),
			CreatedAt:    time.Now().UTC(),
		}
		if !route.anonymous {
			entry.IPAddress = c.ClientIP()
		}
		auditSvc.Log(c.Request.Context(), entry)
	}
}
