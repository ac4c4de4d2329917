// Package http implements HTTP request handlers for the bracket dashboard.
// It is a thin layer between HTTP transport and the services package,
// concerned only with request parsing and response formatting.
//
// # Architecture Principles
//
//	1. Thin handlers - minimal logic, delegate to services
//	2. HTTP-only concerns - query parsing, validation, rendering
//	3. Error transformation - every failure becomes an RFC 7807 problem
//
// # Request Flow
//
//	HTTP Request → Chi Router → Middleware → Handler → DashboardService → Dataset
//	                                              ↓
//	HTTP Response ← Handler ← Service Response ←─┘
//
// # Handler Structure
//
//	func (h *DashboardHandler) GetRounds(w http.ResponseWriter, r *http.Request) {
//	    query, ok := h.parseRoundsQuery(w, r)
//	    if !ok {
//	        return
//	    }
//	    view, err := h.service.Rounds(r.Context(), selectionFrom(query))
//	    if err != nil {
//	        h.errorHandler.HandleError(w, r, err)
//	        return
//	    }
//	    render.JSON(w, r, roundsResponse(view))
//	}
//
// # Error Handling
//
// All errors follow RFC 7807 Problem Details:
//
//	{
//	    "type": "/errors/validation",
//	    "title": "Bad Request",
//	    "status": 400,
//	    "detail": "Request validation failed",
//	    "instance": "/api/rounds"
//	}
//
// # Testing
//
// Handlers are tested with httptest against a testify mock of the
// dashboard service.
package http
