package http

import (
	pkgErrors "climate-srv/pkg/errors"
)

var errInvalidConfig = pkgErrors.NewHTTPError(
	400, "Invalid configuration payload",
)
