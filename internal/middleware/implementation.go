package middleware

import (
	"context"
	"net"
	"net/http"

	"docuscan/internal/adapter/utils"
	"docuscan/internal/config"
	"docuscan/internal/handlers"
)

func injectRequestID(re requestResponseStruct) requestResponseStruct {
	req := re.req
	if req == nil {
		re.badRequest.httpCode = http.StatusBadRequest
		re.badRequest.errorMessage = "request is empty"
		re.badRequest.isBadRequest = true
		return re
	}
	requestID := req.Header.Get("X-Request-Id")
	if requestID == "" {
		requestID = utils.GetNewUUID()
	}
	re.logger = re.logger.With("requestId", requestID)
	ctx := context.WithValue(req.Context(), config.REQUEST_ID_KEY, requestID)
	req.Header.Set(`X-Request-Id`, requestID)
	re.req = req.WithContext(ctx)

	re.logger.Debug("request id injected")
	return re
}

func rateLimiter(re requestResponseStruct) requestResponseStruct {
	if re.badRequest.isBadRequest {
		return re
	}
	ip, _, err := net.SplitHostPort(re.req.RemoteAddr)
	if err != nil {
		ip = re.req.RemoteAddr
	}

	if !limiterInstance.GetLimiter(ip).Allow() {
		re.logger.Error("Too many requests", "ip", ip, "path", re.req.URL.Path)
		re.badRequest = failureStruct{
			isBadRequest: true,
			httpCode:     http.StatusTooManyRequests,
			errorMessage: "Rate limit exceeded",
		}
		return re
	}
	return re
}

func handleBadRequest(re requestResponseStruct) bool {
	if re.badRequest.isBadRequest {
		re.logger.Warn("Bad request", "httpCode", re.badRequest.httpCode, "errorMessage", re.badRequest.errorMessage, "IP", re.req.RemoteAddr)
		handlers.WriteErrorResponse(re.writer, re.req, re.badRequest.httpCode, re.badRequest.errorMessage)
		return false
	}
	return true
}
