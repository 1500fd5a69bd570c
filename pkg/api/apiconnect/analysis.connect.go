// Package apiconnect wires the AnalysisService messages in package api to
// Connect handlers and clients.
package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/pairtime/pkg/api"
)

// AnalysisServiceName is the fully-qualified name of the AnalysisService.
const AnalysisServiceName = "pairtime.v1.AnalysisService"

// Procedure paths, mounted under "/" + AnalysisServiceName + "/".
const (
	AnalysisServiceFindLongestPairProcedure = "/pairtime.v1.AnalysisService/FindLongestPair"
	AnalysisServiceRankPairsProcedure       = "/pairtime.v1.AnalysisService/RankPairs"
)

// AnalysisServiceHandler is implemented by the server.
type AnalysisServiceHandler interface {
	FindLongestPair(context.Context, *connect.Request[api.FindLongestPairRequest]) (*connect.Response[api.FindLongestPairResponse], error)
	RankPairs(context.Context, *connect.Request[api.RankPairsRequest]) (*connect.Response[api.RankPairsResponse], error)
}

// NewAnalysisServiceHandler builds an HTTP handler for svc and returns the
// path to mount it on. The JSON codec is installed before opts.
func NewAnalysisServiceHandler(svc AnalysisServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)

	findLongestPair := connect.NewUnaryHandler(
		AnalysisServiceFindLongestPairProcedure,
		svc.FindLongestPair,
		opts...,
	)
	rankPairs := connect.NewUnaryHandler(
		AnalysisServiceRankPairsProcedure,
		svc.RankPairs,
		opts...,
	)

	return "/" + AnalysisServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case AnalysisServiceFindLongestPairProcedure:
			findLongestPair.ServeHTTP(w, r)
		case AnalysisServiceRankPairsProcedure:
			rankPairs.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedAnalysisServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedAnalysisServiceHandler struct{}

func (UnimplementedAnalysisServiceHandler) FindLongestPair(context.Context, *connect.Request[api.FindLongestPairRequest]) (*connect.Response[api.FindLongestPairResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pairtime.v1.AnalysisService.FindLongestPair is not implemented"))
}

func (UnimplementedAnalysisServiceHandler) RankPairs(context.Context, *connect.Request[api.RankPairsRequest]) (*connect.Response[api.RankPairsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pairtime.v1.AnalysisService.RankPairs is not implemented"))
}

// AnalysisServiceClient calls a remote AnalysisService.
type AnalysisServiceClient interface {
	FindLongestPair(context.Context, *connect.Request[api.FindLongestPairRequest]) (*connect.Response[api.FindLongestPairResponse], error)
	RankPairs(context.Context, *connect.Request[api.RankPairsRequest]) (*connect.Response[api.RankPairsResponse], error)
}

// NewAnalysisServiceClient creates a client for the service at baseURL
// (for example, http://localhost:8080). The JSON codec is installed before opts.
func NewAnalysisServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AnalysisServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)

	return &analysisServiceClient{
		findLongestPair: connect.NewClient[api.FindLongestPairRequest, api.FindLongestPairResponse](
			httpClient,
			baseURL+AnalysisServiceFindLongestPairProcedure,
			opts...,
		),
		rankPairs: connect.NewClient[api.RankPairsRequest, api.RankPairsResponse](
			httpClient,
			baseURL+AnalysisServiceRankPairsProcedure,
			opts...,
		),
	}
}

type analysisServiceClient struct {
	findLongestPair *connect.Client[api.FindLongestPairRequest, api.FindLongestPairResponse]
	rankPairs       *connect.Client[api.RankPairsRequest, api.RankPairsResponse]
}

func (c *analysisServiceClient) FindLongestPair(ctx context.Context, req *connect.Request[api.FindLongestPairRequest]) (*connect.Response[api.FindLongestPairResponse], error) {
	return c.findLongestPair.CallUnary(ctx, req)
}

func (c *analysisServiceClient) RankPairs(ctx context.Context, req *connect.Request[api.RankPairsRequest]) (*connect.Response[api.RankPairsResponse], error) {
	return c.rankPairs.CallUnary(ctx, req)
}
