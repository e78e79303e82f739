package services

import (
	"errors"

	"logo-lms/access"
	"logo-lms/logger"
	"logo-lms/models"

	"gorm.io/gorm"
)

// authorize evaluates policy and logs a denial as a warning.
func authorize(log *logger.Logger, policy access.Policy, req access.Request) error {
	err := policy.Authorize(req)
	if err != nil {
		var uid uint
		if req.Identity != nil {
			uid = req.Identity.UserID
		}
		log.Warn("denied %s for user %d: %v", req.Action, uid, err)
	}
	return err
}

// lookupError turns a missing row into notFound and anything else into an
// internal error.
func lookupError(log *logger.Logger, err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	log.Error("lookup", err)
	return models.Internal(err)
}

func internal(log *logger.Logger, op string, err error) error {
	log.Error(op, err)
	return models.Internal(err)
}
