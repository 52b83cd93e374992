package devserver

import "github.com/gin-gonic/gin"

// respondOK writes the success envelope the SDK expects.
func respondOK(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"ok": true, "data": data})
}

// respondErr writes the failure envelope: ok=false plus a machine code and
// a human message, with optional field-level details.
func respondErr(c *gin.Context, status int, code, message string, details any) {
	body := gin.H{"ok": false, "error": message, "code": code}
	if details != nil {
		body["details"] = details
	}
	c.JSON(status, body)
}
