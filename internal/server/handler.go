package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/Decentr-net/plutus/internal/action"
	"github.com/Decentr-net/plutus/internal/api"
	"github.com/Decentr-net/plutus/internal/auth"
	"github.com/Decentr-net/plutus/internal/contract"
	"github.com/Decentr-net/plutus/internal/media"
	"github.com/Decentr-net/plutus/internal/storage"
	"github.com/Decentr-net/plutus/internal/validation"
)

var errInvalidRequest = errors.New("invalid request")

func (s server) getChallenge(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /auth/challenge Auth GetChallenge
	//
	// Returns message to be signed by wallet with personal_sign.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: address
	//   in: query
	//   required: true
	//   type: string
	//   example: 0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed
	// responses:
	//   '200':
	//     description: Challenge
	//     schema:
	//       "$ref": "#/definitions/ChallengeResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	msg, err := s.a.Challenge(r.URL.Query().Get("address"))
	if err != nil {
		writeError(w, r, err, "failed to create challenge")
		return
	}

	api.WriteOK(w, http.StatusOK, ChallengeResponse{Message: msg})
}

func (s server) login(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /auth Auth Login
	//
	// Exchanges signed challenge to session token.
	//
	// ---
	// produces:
	// - application/json
	// consumes:
	// - application/json
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/LoginRequest"
	// responses:
	//   '200':
	//     description: Token
	//     schema:
	//       "$ref": "#/definitions/LoginResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '401':
	//     description: invalid signature or expired challenge
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req LoginRequest
	if err := api.ReadJSON(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := s.a.Login(req.Address, req.Message, req.Signature)
	if err != nil {
		writeError(w, r, err, "failed to login")
		return
	}

	api.WriteOK(w, http.StatusOK, LoginResponse{Token: token})
}

func (s server) listCreators(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /creators Creators ListCreators
	//
	// Returns page of registered creators.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: offset
	//   in: query
	//   required: false
	//   default: 0
	// - name: limit
	//   in: query
	//   required: false
	//   default: 20
	//   minimum: 1
	//   maximum: 100
	// responses:
	//   '200':
	//     description: Creators
	//     schema:
	//       "$ref": "#/definitions/ListCreatorsResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	offset, limit, err := extractPageFromQuery(r.URL.Query())
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	list, err := s.s.ListCreators(r.Context(), offset, limit)
	if err != nil {
		writeError(w, r, err, "failed to list creators")
		return
	}

	resp := ListCreatorsResponse{
		Creators: make([]Creator, 0, len(list.Creators)),
		Total:    list.Total,
	}
	for _, v := range list.Creators {
		resp.Creators = append(resp.Creators, toAPICreator(v))
	}

	api.WriteOK(w, http.StatusOK, resp)
}

func (s server) getCreatorPage(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /creators/{address} Creators GetCreatorPage
	//
	// Returns creator with tiers. Subscription of requester is added when request is authorized.
	//
	// ---
	// produces:
	// - application/json
	// security:
	// - bearer: []
	// parameters:
	// - name: address
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Creator page
	//     schema:
	//       "$ref": "#/definitions/CreatorPageResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: creator not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	page, err := s.s.GetCreatorPage(r.Context(), chi.URLParam(r, "address"), auth.AddressFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err, "failed to get creator page")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPICreatorPage(page))
}

func (s server) getCreatorByUsername(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /usernames/{username} Creators GetCreatorByUsername
	//
	// Returns creator by username.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: username
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Creator
	//     schema:
	//       "$ref": "#/definitions/Creator"
	//   '404':
	//     description: creator not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	c, err := s.s.GetCreatorByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, r, err, "failed to get creator by username")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPICreator(c))
}

func (s server) listCreatorPosts(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /creators/{address}/posts Posts ListCreatorPosts
	//
	// Returns active posts of creator. Content of posts requester has no access to is hidden.
	//
	// ---
	// produces:
	// - application/json
	// security:
	// - bearer: []
	// parameters:
	// - name: address
	//   in: path
	//   required: true
	//   type: string
	// - name: offset
	//   in: query
	//   required: false
	// - name: limit
	//   in: query
	//   required: false
	//   default: 20
	//   maximum: 100
	// responses:
	//   '200':
	//     description: Posts
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Post"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	offset, limit, err := extractPageFromQuery(r.URL.Query())
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	posts, err := s.s.ListCreatorPosts(r.Context(),
		chi.URLParam(r, "address"), auth.AddressFromContext(r.Context()), offset, limit,
	)
	if err != nil {
		writeError(w, r, err, "failed to list creator posts")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIPosts(posts))
}

func (s server) getPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts/{id} Posts GetPost
	//
	// Returns post. Content is hidden when requester has no access to it.
	//
	// ---
	// produces:
	// - application/json
	// security:
	// - bearer: []
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: integer
	// responses:
	//   '200':
	//     description: Post
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	p, err := s.s.GetPost(r.Context(), id, auth.AddressFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err, "failed to get post")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIPost(p))
}

func (s server) getComments(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts/{id}/comments Posts GetComments
	//
	// Returns active comments of post.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: integer
	// - name: offset
	//   in: query
	//   required: false
	// - name: limit
	//   in: query
	//   required: false
	//   default: 20
	//   maximum: 100
	// responses:
	//   '200':
	//     description: Comments
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Comment"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	offset, limit, err := extractPageFromQuery(r.URL.Query())
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := s.s.GetComments(r.Context(), id, offset, limit)
	if err != nil {
		writeError(w, r, err, "failed to get comments")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIComments(c))
}

func (s server) getSubscription(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /subscriptions/{creator} Subscriptions GetSubscription
	//
	// Returns subscription of requester to creator.
	//
	// ---
	// produces:
	// - application/json
	// security:
	// - bearer: []
	// parameters:
	// - name: creator
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Subscription
	//     schema:
	//       "$ref": "#/definitions/Subscription"
	//   '401':
	//     description: unauthorized
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: subscription not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	v, err := s.s.GetSubscriptionState(r.Context(), auth.AddressFromContext(r.Context()), chi.URLParam(r, "creator"))
	if err != nil {
		writeError(w, r, err, "failed to get subscription")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPISubscription(v))
}

func (s server) upload(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /upload Media Upload
	//
	// Pins file. Upload is recorded for requester when request is authorized.
	//
	// ---
	// produces:
	// - application/json
	// consumes:
	// - multipart/form-data
	// security:
	// - bearer: []
	// parameters:
	// - name: file
	//   in: formData
	//   required: true
	//   type: file
	// - name: kind
	//   in: formData
	//   required: false
	//   type: string
	//   enum: [avatar, banner, content, any]
	// responses:
	//   '200':
	//     description: Pinned file
	//     schema:
	//       "$ref": "#/definitions/UploadResponse"
	//   '400':
	//     description: missing or invalid file
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: pinning service failed
	//     schema:
	//       "$ref": "#/definitions/Error"

	if err := r.ParseMultipartForm(uploadMemory); err != nil {
		api.WriteError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll() // nolint:errcheck

	policy, err := media.PolicyByKind(r.FormValue("kind"))
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	f, h, err := r.FormFile("file")
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer f.Close() // nolint:errcheck

	t := h.Header.Get("Content-Type")
	if t == "application/octet-stream" {
		// browsers send it for unknown extensions, the type is detected from content then
		t = ""
	}

	res, err := s.s.Upload(r.Context(), auth.AddressFromContext(r.Context()), media.File{
		Name:    h.Filename,
		Type:    t,
		Size:    h.Size,
		Content: f,
	}, policy)
	if err != nil {
		writeError(w, r, err, "failed to upload file")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIUploadResult(res))
}

func (s server) getSignedURL(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /url Media GetSignedURL
	//
	// Returns short-lived url which allows to upload file directly to pinning service.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Signed url
	//     schema:
	//       "$ref": "#/definitions/URLResponse"
	//   '500':
	//     description: pinning service failed
	//     schema:
	//       "$ref": "#/definitions/Error"

	u, err := s.s.SignedUploadURL(r.Context())
	if err != nil {
		writeError(w, r, err, "failed to get signed url")
		return
	}

	api.WriteOK(w, http.StatusOK, URLResponse{URL: u})
}

func (s server) listUploads(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /uploads Media ListUploads
	//
	// Returns files uploaded by requester, newest first.
	//
	// ---
	// produces:
	// - application/json
	// security:
	// - bearer: []
	// parameters:
	// - name: limit
	//   in: query
	//   required: false
	//   default: 20
	//   maximum: 100
	// responses:
	//   '200':
	//     description: Uploads
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Upload"
	//   '401':
	//     description: unauthorized
	//     schema:
	//       "$ref": "#/definitions/Error"

	_, limit, err := extractPageFromQuery(r.URL.Query())
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := s.s.ListUploads(r.Context(), auth.AddressFromContext(r.Context()), uint16(limit))
	if err != nil {
		writeError(w, r, err, "failed to list uploads")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIUploads(u))
}

func (s server) listConversations(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /messages Messages ListConversations
	//
	// Returns the last message with every peer of requester.
	//
	// ---
	// produces:
	// - application/json
	// security:
	// - bearer: []
	// responses:
	//   '200':
	//     description: Conversations
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Conversation"
	//   '401':
	//     description: unauthorized
	//     schema:
	//       "$ref": "#/definitions/Error"

	c, err := s.s.ListConversations(r.Context(), auth.AddressFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err, "failed to list conversations")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIConversations(c))
}

func (s server) listMessages(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /messages/{peer} Messages ListMessages
	//
	// Returns messages between requester and peer, newest first.
	//
	// ---
	// produces:
	// - application/json
	// security:
	// - bearer: []
	// parameters:
	// - name: peer
	//   in: path
	//   required: true
	//   type: string
	// - name: before
	//   description: sets not-including upper bound by message id
	//   in: query
	//   required: false
	// - name: limit
	//   in: query
	//   required: false
	//   default: 50
	//   maximum: 100
	// responses:
	//   '200':
	//     description: Messages
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Message"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	q := r.URL.Query()

	before, err := parseUint(q, "before", 0)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	limit, err := parseUint(q, "limit", 0)
	if err != nil || limit > maxLimit {
		api.WriteError(w, http.StatusBadRequest, fmt.Sprintf("%s: invalid limit", errInvalidRequest))
		return
	}

	m, err := s.s.ListConversation(r.Context(),
		auth.AddressFromContext(r.Context()), chi.URLParam(r, "peer"), before, uint16(limit),
	)
	if err != nil {
		writeError(w, r, err, "failed to list messages")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIMessages(m))
}

func (s server) sendMessage(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /messages/{peer} Messages SendMessage
	//
	// Sends message from requester to peer.
	//
	// ---
	// produces:
	// - application/json
	// consumes:
	// - application/json
	// security:
	// - bearer: []
	// parameters:
	// - name: peer
	//   in: path
	//   required: true
	//   type: string
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/SendMessageRequest"
	// responses:
	//   '201':
	//     description: Sent message
	//     schema:
	//       "$ref": "#/definitions/Message"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req SendMessageRequest
	if err := api.ReadJSON(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	m, err := s.s.SendMessage(r.Context(), auth.AddressFromContext(r.Context()), chi.URLParam(r, "peer"), req.Body)
	if err != nil {
		writeError(w, r, err, "failed to send message")
		return
	}

	api.WriteOK(w, http.StatusCreated, toAPIMessage(m))
}

func (s server) markRead(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /messages/{peer}/read Messages MarkRead
	//
	// Marks messages from peer to requester as read.
	//
	// ---
	// produces:
	// - application/json
	// security:
	// - bearer: []
	// parameters:
	// - name: peer
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Count of updated messages
	//     schema:
	//       "$ref": "#/definitions/MarkReadResponse"

	n, err := s.s.MarkRead(r.Context(), auth.AddressFromContext(r.Context()), chi.URLParam(r, "peer"))
	if err != nil {
		writeError(w, r, err, "failed to mark messages as read")
		return
	}

	api.WriteOK(w, http.StatusOK, MarkReadResponse{Updated: n})
}

// writeError maps service errors to statuses. Unknown errors are logged and hidden behind 500.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case validation.IsError(err):
		api.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrUnauthorized):
		api.WriteError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, contract.ErrNotFound), errors.Is(err, storage.ErrNotFound):
		api.WriteError(w, http.StatusNotFound, "not found")
	case errors.Is(err, action.ErrPending):
		api.WriteError(w, http.StatusConflict, err.Error())
	default:
		api.WriteInternalErrorf(r.Context(), w, "%s: %s", msg, err.Error())
	}
}

func extractPageFromQuery(q url.Values) (offset uint64, limit uint64, err error) {
	if offset, err = parseUint(q, "offset", 0); err != nil {
		return 0, 0, err
	}

	if limit, err = parseUint(q, "limit", defaultLimit); err != nil {
		return 0, 0, err
	}

	if limit == 0 || limit > maxLimit {
		return 0, 0, fmt.Errorf("%w: limit should be between 1 and %d", errInvalidRequest, maxLimit)
	}

	return offset, limit, nil
}

func parseUint(q url.Values, name string, def uint64) (uint64, error) {
	s := q.Get(name)
	if s == "" {
		return def, nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to parse %s", errInvalidRequest, name)
	}

	return v, nil
}
