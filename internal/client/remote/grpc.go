package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/instaphotos/internal/client/models"
	"github.com/dmitrijs2005/instaphotos/internal/common"
	pb "github.com/dmitrijs2005/instaphotos/internal/proto"
)

// GRPCRemote implements Identity and DocumentStore over the PhotoStore
// gRPC service. One instance owns one connection and the token pair for
// the current session.
type GRPCRemote struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.PhotoStoreServiceClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func NewGRPCRemote(endpointURL string) (*GRPCRemote, error) {
	r := &GRPCRemote{endpointURL: endpointURL}

	conn, err := grpc.NewClient(r.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(r.accessTokenInterceptor))
	if err != nil {
		return nil, err
	}
	r.conn = conn
	r.client = pb.NewPhotoStoreServiceClient(conn)
	return r, nil
}

func (r *GRPCRemote) Close() error {
	return r.conn.Close()
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (r *GRPCRemote) tokens() (string, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.accessToken, r.refreshToken
}

func (r *GRPCRemote) setTokens(access, refresh string) {
	r.mu.Lock()
	r.accessToken = access
	r.refreshToken = refresh
	r.mu.Unlock()
}

func (r *GRPCRemote) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	access, refresh := r.tokens()
	ctx = withAccessToken(ctx, access)

	err := invoker(ctx, method, req, reply, cc, opts...)

	if err != nil {

		st, ok := status.FromError(err)
		if !ok {
			return err
		}

		if st.Code() != codes.Unauthenticated {
			return err
		}
		if st.Message() != common.ErrTokenExpired.Error() {
			return err
		}

		if refresh == "" {
			return err
		}

		resp, err := r.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
		if err != nil {
			return err
		}

		r.setTokens(resp.AccessToken, resp.RefreshToken)

		// tokens refreshed, replay once with the new access token
		ctx = withAccessToken(ctx, resp.AccessToken)
		return invoker(ctx, method, req, reply, cc, opts...)

	}

	return err
}

func (r *GRPCRemote) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return common.ErrNotFound
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

// ---- Identity ----

func (r *GRPCRemote) CreateAccount(ctx context.Context, email, password string) (models.Session, error) {

	resp, err := r.client.Register(ctx, &pb.RegisterRequest{Email: email, Password: password})
	if err != nil {
		return models.Session{}, r.mapError(err)
	}

	r.setTokens(resp.AccessToken, resp.RefreshToken)

	return models.Session{UserID: resp.UserId}, nil
}

func (r *GRPCRemote) SignIn(ctx context.Context, email, password string) (models.Session, error) {

	resp, err := r.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return models.Session{}, r.mapError(err)
	}

	r.setTokens(resp.AccessToken, resp.RefreshToken)

	return models.Session{UserID: resp.UserId}, nil
}

func (r *GRPCRemote) SignOut(ctx context.Context) error {
	_, err := r.client.Logout(ctx, &pb.LogoutRequest{})
	r.setTokens("", "")
	if err != nil {
		return r.mapError(err)
	}
	return nil
}

// CurrentSession reads the user id from the held access token's claims.
// The token is not verified locally; the server rejects forged tokens on
// the next call anyway.
func (r *GRPCRemote) CurrentSession(ctx context.Context) (models.Session, bool) {
	access, _ := r.tokens()
	if access == "" {
		return models.Session{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(access, claims); err != nil {
		return models.Session{}, false
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil && exp.Before(time.Now()) {
		return models.Session{}, false
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return models.Session{}, false
	}

	return models.Session{UserID: sub}, true
}

// ---- DocumentStore ----

func (r *GRPCRemote) Get(ctx context.Context, collection, id string) (Document, error) {

	resp, err := r.client.GetDocument(ctx, &pb.GetDocumentRequest{Collection: collection, Id: id})
	if err != nil {
		return nil, r.mapError(err)
	}
	if resp.Document == nil {
		return nil, common.ErrNotFound
	}
	return Document(resp.Document.Data), nil
}

func (r *GRPCRemote) Query(ctx context.Context, collection string, filters ...Filter) ([]Document, error) {

	reqFilters := make([]*pb.Filter, 0, len(filters))
	for _, f := range filters {
		pf, err := filterToProto(f)
		if err != nil {
			return nil, err
		}
		reqFilters = append(reqFilters, pf)
	}

	resp, err := r.client.QueryDocuments(ctx, &pb.QueryDocumentsRequest{Collection: collection, Filters: reqFilters})
	if err != nil {
		return nil, r.mapError(err)
	}

	docs := make([]Document, 0, len(resp.Documents))
	for _, d := range resp.Documents {
		docs = append(docs, Document(d.Data))
	}
	return docs, nil
}

func (r *GRPCRemote) Set(ctx context.Context, collection, id string, doc Document) error {

	_, err := r.client.SetDocument(ctx, &pb.SetDocumentRequest{Collection: collection, Id: id, Data: doc})
	if err != nil {
		return r.mapError(err)
	}
	return nil
}

func (r *GRPCRemote) Update(ctx context.Context, collection, id string, fields map[string]any) error {

	data, err := json.Marshal(fields)
	if err != nil {
		return err
	}

	_, err = r.client.UpdateDocument(ctx, &pb.UpdateDocumentRequest{Collection: collection, Id: id, Fields: data})
	if err != nil {
		return r.mapError(err)
	}
	return nil
}

func (r *GRPCRemote) BatchUpdate(ctx context.Context, updates []FieldUpdate) error {

	reqUpdates := make([]*pb.UpdateDocumentRequest, 0, len(updates))
	for _, u := range updates {
		data, err := json.Marshal(u.Fields)
		if err != nil {
			return err
		}
		reqUpdates = append(reqUpdates, &pb.UpdateDocumentRequest{Collection: u.Collection, Id: u.ID, Fields: data})
	}

	_, err := r.client.BatchUpdate(ctx, &pb.BatchUpdateRequest{Updates: reqUpdates})
	if err != nil {
		return r.mapError(err)
	}
	return nil
}

func (r *GRPCRemote) Ping(ctx context.Context) error {

	resp, err := r.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return r.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func filterToProto(f Filter) (*pb.Filter, error) {
	value, err := json.Marshal(f.Value)
	if err != nil {
		return nil, err
	}
	return &pb.Filter{Field: f.Field, Op: string(f.Op), Value: value}, nil
}
