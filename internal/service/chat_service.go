package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ai-shopchat-be/internal/constant"
	"ai-shopchat-be/internal/dto"
	"ai-shopchat-be/internal/pkg/logger"
	"ai-shopchat-be/internal/repository/memory"
	"ai-shopchat-be/pkg/analyze"
	"ai-shopchat-be/pkg/embedding"
	"ai-shopchat-be/pkg/intent"
	"ai-shopchat-be/pkg/normalize"
	"ai-shopchat-be/pkg/safety"
	"ai-shopchat-be/pkg/search"
	"ai-shopchat-be/pkg/sparse"
	"ai-shopchat-be/pkg/store"
)

// IChatService defines the conversational retrieval service interface
type IChatService interface {
	HandleChat(ctx context.Context, request *dto.ChatRequest) (dto.ChatOutcome, error)
}

// chatService is the per-session conversation controller: it decides, for
// each inbound message, whether to ask a clarifying question, answer a
// follow-up from cached results, or run a full search turn.
type chatService struct {
	sessionRepo       *memory.SessionRepository
	analyzer          *analyze.Analyzer
	embeddingProvider embedding.EmbeddingProvider
	queryBuilder      *search.QueryBuilder
	orchestrator      *search.Orchestrator
	safetyFilter      *safety.Filter
	classifier        *intent.Classifier
	resolver          *normalize.Resolver
	policy            *constant.ChatPolicy
	logger            logger.ILogger
}

func NewChatService(
	sessionRepo *memory.SessionRepository,
	analyzer *analyze.Analyzer,
	embeddingProvider embedding.EmbeddingProvider,
	queryBuilder *search.QueryBuilder,
	orchestrator *search.Orchestrator,
	safetyFilter *safety.Filter,
	classifier *intent.Classifier,
	resolver *normalize.Resolver,
	policy *constant.ChatPolicy,
	sysLogger logger.ILogger,
) IChatService {
	return &chatService{
		sessionRepo:       sessionRepo,
		analyzer:          analyzer,
		embeddingProvider: embeddingProvider,
		queryBuilder:      queryBuilder,
		orchestrator:      orchestrator,
		safetyFilter:      safetyFilter,
		classifier:        classifier,
		resolver:          resolver,
		policy:            policy,
		logger:            sysLogger,
	}
}

// HandleChat processes one conversation turn. Turns for the same session are
// serialized by the repository's per-session lock; an absent sessionId runs
// the turn statelessly (no clarification stages, no cached follow-ups).
func (cs *chatService) HandleChat(ctx context.Context, request *dto.ChatRequest) (dto.ChatOutcome, error) {
	message := request.Message

	var session *store.Session
	if request.SessionID != "" {
		cs.sessionRepo.Lock(request.SessionID)
		defer cs.sessionRepo.Unlock(request.SessionID)
		session = cs.sessionRepo.GetOrCreate(request.SessionID)
	}

	pushHistory(session, constant.ChatMessageRoleUser, message)

	if session != nil && session.NeedStage == store.NeedStageAwaitClarification1 {
		return cs.handleFirstClarification(session, message), nil
	}

	if session != nil && session.NeedStage == store.NeedStageAwaitClarification2 {
		return cs.handleSecondClarification(ctx, session, message)
	}

	hasLastResults := session != nil && len(session.LastResults) > 0
	classification := cs.classifier.Classify(message)

	if !classification.IsProductSearch || classification.IsFollowup {
		return cs.handleNonSearch(session, message, classification, hasLastResults), nil
	}

	return cs.handleSearchIntent(session, message, classification), nil
}

// handleFirstClarification consumes the answer to the first clarifying
// question. A negative answer replies with the clarification-only prompt;
// whether it also returns the session to idle is policy-controlled (the
// shipped behavior keeps the stage).
func (cs *chatService) handleFirstClarification(session *store.Session, message string) dto.ChatOutcome {
	if cs.classifier.IsNegativeAnswer(message) {
		if cs.policy.ResetNeedStageOnNegative {
			session.NeedStage = store.NeedStageIdle
			session.PendingNeedMessage = ""
		}
		return cs.answer(session, cs.policy.NeedOnlyPrompt)
	}

	session.PendingNeedMessage = message
	session.NeedStage = store.NeedStageAwaitClarification2
	return cs.answer(session, cs.policy.NeedQuestionStage2)
}

// handleSecondClarification joins the buffered need message with the second
// answer and runs the full search turn. On an external failure the session's
// state fields are restored to their pre-turn values; the inbound history
// entry stays.
func (cs *chatService) handleSecondClarification(ctx context.Context, session *store.Session, message string) (dto.ChatOutcome, error) {
	parts := make([]string, 0, 2)
	if session.PendingNeedMessage != "" {
		parts = append(parts, session.PendingNeedMessage)
	}
	if message != "" {
		parts = append(parts, message)
	}
	combined := strings.Join(parts, "\n")

	prevStage := session.NeedStage
	prevPending := session.PendingNeedMessage
	prevResults := session.LastResults

	session.NeedStage = store.NeedStageIdle
	session.PendingNeedMessage = ""

	outcome, err := cs.runSearchTurn(ctx, session, combined)
	if err != nil {
		session.NeedStage = prevStage
		session.PendingNeedMessage = prevPending
		session.LastResults = prevResults
		cs.logger.Error("chat", "search turn failed", map[string]interface{}{
			"session_id": session.ID,
			"error":      err.Error(),
		})
		return nil, errors.New(cs.policy.SearchFailed)
	}
	return outcome, nil
}

// runSearchTurn executes a complete retrieval pass: caution extraction,
// query analysis, filter normalization, query text, embedding, sparse
// encoding, relaxation cascade, safety filtering, session update.
func (cs *chatService) runSearchTurn(ctx context.Context, session *store.Session, combined string) (dto.ChatOutcome, error) {
	cautionKeywords := cs.safetyFilter.ExtractCautionKeywords(combined)

	analysis, err := cs.analyzer.Analyze(ctx, combined)
	if err != nil {
		return nil, err
	}

	filters := analysis.Analyzed.Filters
	if filters.Brand != nil {
		brand := cs.resolver.ResolveBrand(*filters.Brand)
		filters.Brand = &brand
	}
	if filters.Category != nil {
		category := cs.resolver.ResolveCategory(*filters.Category)
		filters.Category = &category
	}

	queryText := cs.queryBuilder.BuildQueryText(analysis.Analyzed.SemanticQuery, filters, combined)

	embeddingRes, err := cs.embeddingProvider.Generate(ctx, queryText)
	if err != nil {
		return nil, err
	}

	sparseVector := sparse.Encode(queryText)

	result, err := cs.orchestrator.Execute(ctx, embeddingRes.Embedding, sparseVector, filters)
	if err != nil {
		return nil, err
	}

	if len(result) == 0 {
		if session != nil {
			session.LastResults = nil
		}
		return cs.answer(session, cs.policy.NoResults), nil
	}

	safeResults := cs.safetyFilter.Apply(result, cautionKeywords)
	if len(safeResults) == 0 {
		if session != nil {
			session.LastResults = nil
		}
		text := cs.policy.NoResults
		if len(cautionKeywords) > 0 {
			text = cs.safetyFilter.NoRecommendationMessage(cautionKeywords)
		}
		return cs.answer(session, text), nil
	}

	if session != nil {
		session.LastResults = safeResults
	}
	pushHistory(session, constant.ChatMessageRoleAssistant, fmt.Sprintf("검색 결과 %d건", len(safeResults)))

	return dto.SearchOutcome{
		Analyzed: analysis.Analyzed,
		Result:   safeResults,
		Usage:    embeddingRes.Usage,
	}, nil
}

// handleNonSearch covers every idle-state turn that is not a fresh product
// search: follow-up answering from cached results, the clarification entry
// for follow-ups without context, and the fixed fallback prompts.
func (cs *chatService) handleNonSearch(
	session *store.Session,
	message string,
	classification intent.Classification,
	hasLastResults bool,
) dto.ChatOutcome {

	if classification.IsFollowup && hasLastResults {
		target := findReferencedProduct(message, session.LastResults)
		if target == nil {
			return cs.answer(session, cs.policy.AskProductName)
		}
		return cs.answer(session, buildFollowupAnswer(target.Payload))
	}

	if classification.IsFollowup && !hasLastResults && classification.IsProductSearch {
		if session != nil {
			session.NeedStage = store.NeedStageAwaitClarification1
			session.PendingNeedMessage = message
		}
		return cs.answer(session, cs.policy.NeedQuestionStage1)
	}

	if classification.IsFollowup && !hasLastResults {
		return cs.answer(session, cs.policy.NeedMissing)
	}

	return cs.answer(session, cs.policy.RecommendPrompt)
}

// handleSearchIntent starts the clarification slot-filling for a fresh
// product search. Messages that already carry explicit need keywords skip
// straight to the second question.
func (cs *chatService) handleSearchIntent(
	session *store.Session,
	message string,
	classification intent.Classification,
) dto.ChatOutcome {

	if session != nil {
		if classification.HasNeedKeywords {
			session.NeedStage = store.NeedStageAwaitClarification2
			session.PendingNeedMessage = message
			return cs.answer(session, cs.policy.NeedQuestionStage2)
		}
		session.NeedStage = store.NeedStageAwaitClarification1
		session.PendingNeedMessage = message
	}
	return cs.answer(session, cs.policy.NeedQuestionStage1)
}

// answer wraps a textual reply and records it in session history.
func (cs *chatService) answer(session *store.Session, text string) dto.ChatOutcome {
	pushHistory(session, constant.ChatMessageRoleAssistant, text)
	return dto.AnswerOutcome{Text: text}
}

func pushHistory(session *store.Session, role, content string) {
	if session == nil {
		return
	}
	session.PushHistory(role, content)
}

// findReferencedProduct locates the product a follow-up refers to: the first
// cached result whose name appears in the message, else the first result.
func findReferencedProduct(message string, results []store.ProductMatch) *store.ProductMatch {
	text := strings.ToLower(message)
	for i := range results {
		name := strings.ToLower(results[i].Payload.Name)
		if name != "" && strings.Contains(text, name) {
			return &results[i]
		}
	}
	if len(results) > 0 {
		return &results[0]
	}
	return nil
}

// buildFollowupAnswer lists a product's secondary benefits and recommended
// audience, each capped at 5 items, with placeholders for missing data.
func buildFollowupAnswer(payload store.ProductPayload) string {
	name := payload.Name
	if name == "" {
		name = "이 상품"
	}

	lines := []string{
		fmt.Sprintf("\"%s\" 기준으로 추가 효능과 추천 대상 정보를 정리해드릴게요.", name),
	}

	if len(payload.SecondaryBenefits) > 0 {
		lines = append(lines, "부수 효능: "+strings.Join(truncate(payload.SecondaryBenefits, 5), ", "))
	} else {
		lines = append(lines, "부수 효능 정보는 아직 부족해요.")
	}

	if len(payload.RecommendedFor) > 0 {
		lines = append(lines, "추천 대상: "+strings.Join(truncate(payload.RecommendedFor, 5), ", "))
	} else {
		lines = append(lines, "추천 대상 정보는 아직 부족해요.")
	}

	return strings.Join(lines, "\n")
}

func truncate(items []string, max int) []string {
	if len(items) <= max {
		return items
	}
	return items[:max]
}
