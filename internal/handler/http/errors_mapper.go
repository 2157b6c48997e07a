package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-photo-album/internal/app"
	"github.com/MKhiriev/go-photo-album/internal/logger"
	"github.com/MKhiriev/go-photo-album/internal/service"
	"github.com/MKhiriev/go-photo-album/internal/store"
	"github.com/MKhiriev/go-photo-album/internal/utils"
)

// errorReply is what the client sees for a service error.
type errorReply struct {
	status  int
	message string
	kind    string
}

var serverErrorReply = errorReply{http.StatusInternalServerError, app.MsgServerError, app.KindServer}

var errorStatusMap = map[error]errorReply{
	service.ErrValidationNoUserID:     {http.StatusBadRequest, app.MsgUserIDRequired, app.KindValidation},
	service.ErrValidationNoTitle:      {http.StatusBadRequest, app.MsgUserIDAndTitleRequired, app.KindValidation},
	service.ErrValidationInvalidAlbum: {http.StatusBadRequest, app.MsgInvalidAlbum, app.KindValidation},
	service.ErrValidationNoProfile:    {http.StatusBadRequest, app.MsgUserInfoMissing, app.KindValidation},

	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgAuthFailed, app.KindAuth},
	service.ErrUserNotFound:            {http.StatusUnauthorized, app.MsgUserNotFound, app.KindAuth},
	service.ErrUserInactive:            {http.StatusForbidden, app.MsgUserInactive, app.KindForbidden},
	service.ErrForeignAlbum:            {http.StatusForbidden, app.MsgForbidden, app.KindForbidden},

	store.ErrAlbumNotFound:  {http.StatusNotFound, app.MsgAlbumNotFound, app.KindNotFound},
	store.ErrNoUserWasFound: {http.StatusUnauthorized, app.MsgUserNotFound, app.KindAuth},
	store.ErrStorageQuota:   {http.StatusInsufficientStorage, app.MsgStorageQuota, app.KindStorageQuota},

	service.ErrTokenCreationFailed: serverErrorReply,
	store.ErrAlbumNotSaved:         serverErrorReply,
	store.ErrBuildingSQLQuery:      serverErrorReply,
	store.ErrExecutingQuery:        serverErrorReply,
	store.ErrBeginningTransaction:  serverErrorReply,
	store.ErrCommitingTransaction:  serverErrorReply,
	store.ErrExecutingStatement:    serverErrorReply,
	store.ErrScanningRow:           serverErrorReply,
	store.ErrScanningRows:          serverErrorReply,
}

func replyFromError(err error) errorReply {
	for target, reply := range errorStatusMap {
		if errors.Is(err, target) {
			return reply
		}
	}
	return serverErrorReply
}

func statusFromError(err error) int {
	return replyFromError(err).status
}

// writeServiceError answers with the reply mapped from err. Internal details
// only go to the log.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	reply := replyFromError(err)

	log := logger.FromRequest(r)
	if reply.status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", reply.status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", reply.status).Msg("request rejected")
	}

	utils.WriteError(w, reply.status, reply.message, reply.kind)
}
