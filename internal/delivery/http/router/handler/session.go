package handler

import (
	"mezze/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXSessionID carries the browsing session ID. The cart lives under
// this ID, so clients must echo the header back on every cart request.
const HeaderXSessionID = "X-Session-Id"

// sessionID extracts the session ID from the request header, issuing a
// fresh one when the header is absent or malformed. The resolved ID is
// always reflected in the response header so the client can persist it.
func sessionID(c echo.Context) uuid.UUID {
	id, err := uuid.Parse(c.Request().Header.Get(HeaderXSessionID))
	if err != nil {
		id = uuid.New()
	}

	c.Response().Header().Set(HeaderXSessionID, id.String())

	return id
}

// requestLanguage resolves the display language from the lang query
// parameter, falling back to the primary language.
func requestLanguage(c echo.Context) entity.Language {
	return entity.ParseLanguage(c.QueryParam("lang"))
}
