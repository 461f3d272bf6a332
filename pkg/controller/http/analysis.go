package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/strat-lab/cogward/pkg/domain/model"
	"github.com/strat-lab/cogward/pkg/domain/types"
	"github.com/strat-lab/cogward/pkg/engine"
	"github.com/strat-lab/cogward/pkg/usecase"
	"github.com/strat-lab/cogward/pkg/utils/errutil"
)

type ingestRequest struct {
	Name     string          `json:"name"`
	Rubric   string          `json:"rubric"`
	Snapshot json.RawMessage `json:"snapshot"`
}

type whatIfRequest struct {
	Excluded []string `json:"excluded"`
}

type analysisResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Rubric             string    `json:"rubric"`
	CoGCount           int       `json:"cog_count"`
	CapabilityCount    int       `json:"capability_count"`
	RequirementCount   int       `json:"requirement_count"`
	VulnerabilityCount int       `json:"vulnerability_count"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type cogNode struct {
	ID            string `json:"id"`
	Description   string `json:"description"`
	ActorCategory string `json:"actor_category"`
	Domain        string `json:"domain"`
	Rationale     string `json:"rationale,omitempty"`
}

type capabilityNode struct {
	ID         string `json:"id"`
	CoGID      string `json:"cog_id"`
	Capability string `json:"capability"`
}

type requirementNode struct {
	ID           string `json:"id"`
	CapabilityID string `json:"capability_id"`
	Requirement  string `json:"requirement"`
}

type vulnerabilityNode struct {
	ID                 string   `json:"id"`
	RequirementID      string   `json:"requirement_id"`
	Vulnerability      string   `json:"vulnerability"`
	Type               string   `json:"vulnerability_type"`
	Impact             int      `json:"impact"`
	Attainability      int      `json:"attainability"`
	FollowUp           int      `json:"follow_up"`
	Composite          int      `json:"composite"`
	RecommendedActions []string `json:"recommended_actions,omitempty"`
	ExpectedEffect     string   `json:"expected_effect,omitempty"`
	Confidence         string   `json:"confidence,omitempty"`
}

type edgeResponse struct {
	ParentID string `json:"parent_id"`
	ChildID  string `json:"child_id"`
}

type orphanResponse struct {
	Tier     string `json:"tier"`
	EntityID string `json:"entity_id"`
	ParentID string `json:"parent_id,omitempty"`
	Reason   string `json:"reason"`
}

type subgraphResponse struct {
	CentersOfGravity []cogNode           `json:"centers_of_gravity"`
	Capabilities     []capabilityNode    `json:"capabilities"`
	Requirements     []requirementNode   `json:"requirements"`
	Vulnerabilities  []vulnerabilityNode `json:"vulnerabilities"`
	Edges            []edgeResponse      `json:"edges"`
}

type graphResponse struct {
	subgraphResponse
	Orphans []orphanResponse `json:"orphans"`
}

type whatIfResponse struct {
	subgraphResponse
	Summaries []summaryResponse `json:"summaries"`
}

type summaryResponse struct {
	CoGID              string  `json:"cog_id"`
	CapabilityCount    int     `json:"capability_count"`
	RequirementCount   int     `json:"requirement_count"`
	VulnerabilityCount int     `json:"vulnerability_count"`
	AverageScore       float64 `json:"average_score"`
}

type rankingRow struct {
	Priority           int      `json:"priority"`
	Composite          int      `json:"composite"`
	ID                 string   `json:"id"`
	Vulnerability      string   `json:"vulnerability"`
	Type               string   `json:"vulnerability_type"`
	RequirementID      string   `json:"requirement_id"`
	RecommendedActions []string `json:"recommended_actions,omitempty"`
	ExpectedEffect     string   `json:"expected_effect,omitempty"`
	Confidence         string   `json:"confidence,omitempty"`
}

func toAnalysisResponse(a *model.Analysis) analysisResponse {
	cogs, caps, reqs, vulns := a.Snapshot.Counts()
	return analysisResponse{
		ID:                 a.ID.String(),
		Name:               a.Name,
		Rubric:             a.Rubric.String(),
		CoGCount:           cogs,
		CapabilityCount:    caps,
		RequirementCount:   reqs,
		VulnerabilityCount: vulns,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

func toSubgraphResponse(sub *engine.Subgraph) subgraphResponse {
	resp := subgraphResponse{
		CentersOfGravity: make([]cogNode, 0, len(sub.CentersOfGravity)),
		Capabilities:     make([]capabilityNode, 0, len(sub.Capabilities)),
		Requirements:     make([]requirementNode, 0, len(sub.Requirements)),
		Vulnerabilities:  make([]vulnerabilityNode, 0, len(sub.Vulnerabilities)),
		Edges:            make([]edgeResponse, 0, len(sub.Edges)),
	}

	for _, cog := range sub.CentersOfGravity {
		resp.CentersOfGravity = append(resp.CentersOfGravity, cogNode{
			ID:            cog.ID.String(),
			Description:   cog.Description,
			ActorCategory: cog.Actor.String(),
			Domain:        cog.Domain.String(),
			Rationale:     cog.Rationale,
		})
	}
	for _, capability := range sub.Capabilities {
		resp.Capabilities = append(resp.Capabilities, capabilityNode{
			ID:         capability.ID.String(),
			CoGID:      capability.CoGID.String(),
			Capability: capability.Capability,
		})
	}
	for _, req := range sub.Requirements {
		resp.Requirements = append(resp.Requirements, requirementNode{
			ID:           req.ID.String(),
			CapabilityID: req.CapabilityID.String(),
			Requirement:  req.Requirement,
		})
	}
	for _, vuln := range sub.Vulnerabilities {
		factors := vuln.Scoring.Factors
		resp.Vulnerabilities = append(resp.Vulnerabilities, vulnerabilityNode{
			ID:                 vuln.ID.String(),
			RequirementID:      vuln.RequirementID.String(),
			Vulnerability:      vuln.Vulnerability,
			Type:               vuln.Type.String(),
			Impact:             factors.Impact.Int(),
			Attainability:      factors.Attainability.Int(),
			FollowUp:           factors.FollowUp.Int(),
			Composite:          engine.Composite(vuln),
			RecommendedActions: vuln.RecommendedActions,
			ExpectedEffect:     vuln.ExpectedEffect,
			Confidence:         vuln.Confidence,
		})
	}
	for _, edge := range sub.Edges {
		resp.Edges = append(resp.Edges, edgeResponse{ParentID: edge.ParentID, ChildID: edge.ChildID})
	}

	return resp
}

func toSummaryResponse(summary engine.CoGSummary) summaryResponse {
	return summaryResponse{
		CoGID:              summary.CoGID.String(),
		CapabilityCount:    summary.CapabilityCount,
		RequirementCount:   summary.RequirementCount,
		VulnerabilityCount: summary.VulnerabilityCount,
		AverageScore:       summary.AverageScore,
	}
}

func ingestAnalysisHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ingestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
			return
		}

		rubric := types.RubricKind(req.Rubric).Normalize()
		if !rubric.IsValid() {
			errutil.HandleHTTP(r.Context(), w, goerr.New("invalid rubric", goerr.V("rubric", req.Rubric)), http.StatusBadRequest)
			return
		}

		created, err := uc.Analysis.Ingest(r.Context(), req.Name, rubric, req.Snapshot)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		respondJSON(w, http.StatusCreated, toAnalysisResponse(created))
	}
}

func listAnalysesHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		analyses, err := uc.Analysis.List(r.Context())
		if err != nil {
			respondError(w, r, err)
			return
		}

		resp := make([]analysisResponse, 0, len(analyses))
		for _, a := range analyses {
			resp = append(resp, toAnalysisResponse(a))
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

func getAnalysisHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		analysis, err := uc.Analysis.Get(r.Context(), model.AnalysisID(chi.URLParam(r, "analysisID")))
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, toAnalysisResponse(analysis))
	}
}

func deleteAnalysisHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := uc.Analysis.Delete(r.Context(), model.AnalysisID(chi.URLParam(r, "analysisID"))); err != nil {
			respondError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func graphHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		graph, err := uc.Analysis.ResolveGraph(r.Context(), model.AnalysisID(chi.URLParam(r, "analysisID")))
		if err != nil {
			respondError(w, r, err)
			return
		}

		resp := graphResponse{
			subgraphResponse: toSubgraphResponse(graph.Full()),
			Orphans:          make([]orphanResponse, 0, len(graph.Orphans())),
		}
		for _, orphan := range graph.Orphans() {
			resp.Orphans = append(resp.Orphans, orphanResponse{
				Tier:     string(orphan.Tier),
				EntityID: orphan.EntityID,
				ParentID: orphan.ParentID,
				Reason:   string(orphan.Reason),
			})
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

func whatIfHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req whatIfRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
			return
		}

		result, err := uc.Analysis.WhatIf(r.Context(), model.AnalysisID(chi.URLParam(r, "analysisID")), req.Excluded)
		if err != nil {
			respondError(w, r, err)
			return
		}

		resp := whatIfResponse{
			subgraphResponse: toSubgraphResponse(result.Subgraph),
			Summaries:        make([]summaryResponse, 0, len(result.Summaries)),
		}
		for _, summary := range result.Summaries {
			resp.Summaries = append(resp.Summaries, toSummaryResponse(summary))
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

func rankingsHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		excluded := r.URL.Query()["exclude"]

		ranked, err := uc.Analysis.Rankings(r.Context(), model.AnalysisID(chi.URLParam(r, "analysisID")), excluded)
		if err != nil {
			respondError(w, r, err)
			return
		}

		rows := make([]rankingRow, 0, len(ranked))
		for _, item := range ranked {
			vuln := item.Vulnerability
			rows = append(rows, rankingRow{
				Priority:           item.Priority,
				Composite:          item.Composite,
				ID:                 vuln.ID.String(),
				Vulnerability:      vuln.Vulnerability,
				Type:               vuln.Type.String(),
				RequirementID:      vuln.RequirementID.String(),
				RecommendedActions: vuln.RecommendedActions,
				ExpectedEffect:     vuln.ExpectedEffect,
				Confidence:         vuln.Confidence,
			})
		}
		respondJSON(w, http.StatusOK, rows)
	}
}

func summaryHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		excluded := r.URL.Query()["exclude"]

		summary, err := uc.Analysis.Summary(
			r.Context(),
			model.AnalysisID(chi.URLParam(r, "analysisID")),
			types.CoGID(chi.URLParam(r, "cogID")),
			excluded,
		)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, toSummaryResponse(summary))
	}
}
