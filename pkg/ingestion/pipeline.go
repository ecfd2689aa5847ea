package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"ai-shopchat-be/internal/constant"
	"ai-shopchat-be/pkg/embedding"
	"ai-shopchat-be/pkg/llm"
	"ai-shopchat-be/pkg/qdrant"
	"ai-shopchat-be/pkg/sparse"
	"ai-shopchat-be/pkg/store"
)

const defaultEnrichmentConcurrency = 3

var (
	imgSrcRegex  = regexp.MustCompile(`(?i)<img[^>]+src=["']([^"']+)["'][^>]*>`)
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)
	spaceRegex   = regexp.MustCompile(`\s+`)
)

// GoodsItem is one raw catalog entry as exported by the shop backend.
type GoodsItem struct {
	GoodsNo          json.Number `json:"goodsNo"`
	GoodsNm          string      `json:"goodsNm"`
	Brand            string      `json:"brand"`
	CateNm           string      `json:"cateNm"`
	GoodsPrice       json.Number `json:"goodsPrice"`
	GoodsDescription string      `json:"goodsDescription"`
	ImageURL         string      `json:"imageUrl"`
}

// NameInsights is the model-extracted summary derived from a product name.
type NameInsights struct {
	PrimaryIngredient string   `json:"primary_ingredient"`
	EffectsSummary    string   `json:"effects_summary"`
	SecondaryBenefits []string `json:"secondary_benefits"`
	RecommendedFor    []string `json:"recommended_for"`
	NotRecommendedFor []string `json:"not_recommended_for"`
	Notes             string   `json:"notes"`
}

// ImageData is the structured form of one detail image's OCR text.
type ImageData struct {
	Summary      string   `json:"summary"`
	Benefits     []string `json:"benefits"`
	Ingredients  []string `json:"ingredients"`
	Dosage       string   `json:"dosage"`
	Cautions     []string `json:"cautions"`
	Interactions []string `json:"interactions"`
}

// Pipeline turns a raw catalog file into enriched, vectorized points and
// upserts them into the search collection.
type Pipeline struct {
	llmProvider       llm.LLMProvider
	embeddingProvider embedding.EmbeddingProvider
	ocrClient         OCRClient
	qdrantClient      *qdrant.Client
	collection        string
	candidatesFile    string
	concurrency       int
	logger            *log.Logger
}

func NewPipeline(
	llmProvider llm.LLMProvider,
	embeddingProvider embedding.EmbeddingProvider,
	ocrClient OCRClient,
	qdrantClient *qdrant.Client,
	collection string,
	candidatesFile string,
	logger *log.Logger,
) *Pipeline {
	return &Pipeline{
		llmProvider:       llmProvider,
		embeddingProvider: embeddingProvider,
		ocrClient:         ocrClient,
		qdrantClient:      qdrantClient,
		collection:        collection,
		candidatesFile:    candidatesFile,
		concurrency:       defaultEnrichmentConcurrency,
		logger:            logger,
	}
}

// Run executes the full ingestion pass and returns the number of points
// upserted.
func (p *Pipeline) Run(ctx context.Context, catalogFile string) (int, error) {
	p.logger.Printf("[start] preparing points for collection=%s", p.collection)

	goods, err := LoadCatalog(catalogFile)
	if err != nil {
		return 0, err
	}
	if len(goods) == 0 {
		return 0, fmt.Errorf("catalog file %s contains no items", catalogFile)
	}

	points := make([]qdrant.Point, len(goods))
	for i := range goods {
		points[i] = MapGoodsToPoint(goods[i])
	}

	if err := p.collectNormalizationCandidates(points); err != nil {
		p.logger.Printf("[normalization] candidate collection failed: %v", err)
	}

	if err := p.enrichWithNameInsights(ctx, points); err != nil {
		return 0, err
	}
	if err := p.enrichWithImageData(ctx, points); err != nil {
		return 0, err
	}

	texts := make([]string, len(points))
	for i := range points {
		texts[i] = BuildDocumentText(points[i].Payload)
	}

	p.logger.Printf("[embedding] creating dense vectors for %d points", len(texts))
	batch, err := p.embeddingProvider.GenerateBatch(ctx, texts)
	if err != nil {
		return 0, err
	}
	if len(batch.Embeddings) != len(points) {
		return 0, fmt.Errorf("embedding count mismatch: got %d, want %d", len(batch.Embeddings), len(points))
	}

	for i := range points {
		sparseVec := sparse.Encode(texts[i])
		points[i].Vector = qdrant.PointVectors{
			Dense: batch.Embeddings[i],
			Sparse: qdrant.SparseVector{
				Indices: sparseVec.Indices,
				Values:  sparseVec.Values,
			},
		}
	}

	p.logger.Printf("[qdrant] upserting points")
	if err := p.qdrantClient.Upsert(ctx, p.collection, points); err != nil {
		return 0, err
	}

	p.logger.Printf("[done] collection=%s count=%d", p.collection, len(points))
	return len(points), nil
}

// LoadCatalog reads a catalog file holding either an array of goods or a
// single goods object.
func LoadCatalog(path string) ([]GoodsItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var items []GoodsItem
	if err := json.Unmarshal(data, &items); err == nil {
		return items, nil
	}

	var single GoodsItem
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	return []GoodsItem{single}, nil
}

// MapGoodsToPoint converts a raw catalog entry into an upsertable point.
// Numeric goods numbers become point ids directly; anything else gets a
// generated uuid.
func MapGoodsToPoint(goods GoodsItem) qdrant.Point {
	var id interface{}
	if n, err := goods.GoodsNo.Int64(); err == nil {
		id = n
	} else {
		id = uuid.NewString()
	}

	var price *float64
	if v, err := goods.GoodsPrice.Float64(); err == nil {
		price = &v
	}

	descriptionHTML := goods.GoodsDescription

	return qdrant.Point{
		ID: id,
		Payload: store.ProductPayload{
			GoodsNo:      goods.GoodsNo.String(),
			Name:         goods.GoodsNm,
			Brand:        goods.Brand,
			Category:     goods.CateNm,
			Price:        price,
			Description:  StripHTML(descriptionHTML),
			ImageURL:     goods.ImageURL,
			DetailImages: ExtractImageURLs(descriptionHTML),
		},
	}
}

// ExtractImageURLs returns the img src attributes found in an HTML fragment.
func ExtractImageURLs(html string) []string {
	if html == "" {
		return nil
	}
	matches := imgSrcRegex.FindAllStringSubmatch(html, -1)
	urls := make([]string, 0, len(matches))
	for _, m := range matches {
		if m[1] != "" {
			urls = append(urls, m[1])
		}
	}
	return urls
}

// StripHTML removes tags and collapses whitespace.
func StripHTML(html string) string {
	if html == "" {
		return ""
	}
	text := htmlTagRegex.ReplaceAllString(html, " ")
	return strings.TrimSpace(spaceRegex.ReplaceAllString(text, " "))
}

type normalizationCandidate struct {
	Type      string      `json:"type"`
	Value     string      `json:"value"`
	Source    string      `json:"source"`
	ProductID interface{} `json:"product_id"`
	TS        string      `json:"ts"`
}

// collectNormalizationCandidates appends every distinct brand and category
// seen in this batch to the candidates JSONL file, for later review when
// extending the alias table.
func (p *Pipeline) collectNormalizationCandidates(points []qdrant.Point) error {
	seen := make(map[string]bool)
	var lines []string
	ts := time.Now().UTC().Format(time.RFC3339)

	appendCandidate := func(kind, value string, productID interface{}) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		key := kind + ":" + value
		if seen[key] {
			return
		}
		seen[key] = true
		line, err := json.Marshal(normalizationCandidate{
			Type:      kind,
			Value:     value,
			Source:    "insertPoints",
			ProductID: productID,
			TS:        ts,
		})
		if err != nil {
			return
		}
		lines = append(lines, string(line))
	}

	for i := range points {
		appendCandidate("brand", points[i].Payload.Brand, points[i].ID)
		appendCandidate("category", points[i].Payload.Category, points[i].ID)
	}

	if len(lines) == 0 {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(p.candidatesFile), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(p.candidatesFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteString(strings.Join(lines, "\n") + "\n"); err != nil {
		return err
	}
	p.logger.Printf("[normalization] candidates appended: %d", len(lines))
	return nil
}

// enrichWithNameInsights asks the model for an ingredient and audience
// summary per product name, a few products at a time.
func (p *Pipeline) enrichWithNameInsights(ctx context.Context, points []qdrant.Point) error {
	pool, err := ants.NewPool(p.concurrency)
	if err != nil {
		return err
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i := range points {
		idx := i
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			insights, err := p.extractNameInsights(ctx, points[idx].Payload.Name)
			if err != nil {
				p.logger.Printf("[name insights skipped] %s: %v", points[idx].Payload.Name, err)
				return
			}
			payload := &points[idx].Payload
			payload.PrimaryIngredient = insights.PrimaryIngredient
			payload.EffectsSummary = insights.EffectsSummary
			payload.SecondaryBenefits = insights.SecondaryBenefits
			payload.RecommendedFor = insights.RecommendedFor
			payload.NotRecommendedFor = insights.NotRecommendedFor
			payload.Notes = insights.Notes
		})
		if submitErr != nil {
			wg.Done()
			wg.Wait()
			return submitErr
		}
	}
	wg.Wait()
	return nil
}

func (p *Pipeline) logTokenUsage(stage string, usage llm.Usage) {
	p.logger.Printf("[tokens] %s: prompt=%d completion=%d total=%d",
		stage, usage.PromptTokens, usage.CompletionTokens, usage.TotalTokens)
}

func (p *Pipeline) extractNameInsights(ctx context.Context, productName string) (*NameInsights, error) {
	if productName == "" {
		return &NameInsights{}, nil
	}

	history := []llm.Message{
		{Role: "system", Content: constant.NameInsightsSystemPrompt},
		{Role: "user", Content: fmt.Sprintf(constant.NameInsightsUserTemplate, productName)},
	}
	result, err := p.llmProvider.Chat(ctx, history, llm.WithTemperature(0), llm.WithJSONMode())
	if err != nil {
		return nil, err
	}
	p.logTokenUsage("name insights", result.Usage)

	var insights NameInsights
	if err := json.Unmarshal([]byte(result.Content), &insights); err != nil {
		return nil, fmt.Errorf("failed to parse name insights response: %w", err)
	}
	return &insights, nil
}

// enrichWithImageData runs OCR plus structuring over every detail image and
// merges the results into the payload. Individual image failures are logged
// and skipped.
func (p *Pipeline) enrichWithImageData(ctx context.Context, points []qdrant.Point) error {
	pool, err := ants.NewPool(p.concurrency)
	if err != nil {
		return err
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i := range points {
		idx := i
		if len(points[idx].Payload.DetailImages) == 0 {
			continue
		}
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			p.enrichPointImages(ctx, &points[idx])
		})
		if submitErr != nil {
			wg.Done()
			wg.Wait()
			return submitErr
		}
	}
	wg.Wait()
	return nil
}

func (p *Pipeline) enrichPointImages(ctx context.Context, point *qdrant.Point) {
	var extracted []ImageData
	for _, url := range point.Payload.DetailImages {
		if url == "" {
			continue
		}
		data, err := p.extractImageData(ctx, url)
		if err != nil {
			p.logger.Printf("[image extract skipped] %s: %v", url, err)
			continue
		}
		p.logger.Printf("[image extracted] %s", url)
		extracted = append(extracted, *data)
	}
	if len(extracted) == 0 {
		return
	}

	payload := &point.Payload
	for _, data := range extracted {
		payload.DetailImageBenefits = append(payload.DetailImageBenefits, data.Benefits...)
		payload.DetailImageIngredients = append(payload.DetailImageIngredients, data.Ingredients...)
		payload.DetailImageCautions = append(payload.DetailImageCautions, data.Cautions...)
		payload.DetailImageInteractions = append(payload.DetailImageInteractions, data.Interactions...)
	}
	payload.DetailImageText = BuildDetailImageText(extracted)
	payload.SecondaryBenefits = mergeDistinct(payload.SecondaryBenefits, payload.DetailImageBenefits)
}

func (p *Pipeline) extractImageData(ctx context.Context, imageURL string) (*ImageData, error) {
	ocrText, err := p.ocrClient.ExtractText(ctx, imageURL)
	if err != nil {
		return nil, err
	}
	if ocrText == "" {
		return &ImageData{}, nil
	}

	history := []llm.Message{
		{Role: "system", Content: constant.ImageStructureSystemPrompt},
		{Role: "user", Content: fmt.Sprintf(constant.ImageStructureUserTemplate, ocrText)},
	}
	result, err := p.llmProvider.Chat(ctx, history, llm.WithTemperature(0), llm.WithJSONMode())
	if err != nil {
		return nil, err
	}
	p.logTokenUsage("image structure", result.Usage)

	var data ImageData
	if err := json.Unmarshal([]byte(result.Content), &data); err != nil {
		return nil, fmt.Errorf("failed to parse image structure response: %w", err)
	}
	return &data, nil
}

// BuildDetailImageText flattens structured image extractions into a single
// labeled text block for embedding.
func BuildDetailImageText(extracted []ImageData) string {
	if len(extracted) == 0 {
		return ""
	}
	blocks := make([]string, 0, len(extracted))
	for i, data := range extracted {
		blocks = append(blocks, strings.Join([]string{
			fmt.Sprintf("상세이미지#%d", i+1),
			"이미지요약: " + data.Summary,
			"이미지효능: " + strings.Join(data.Benefits, " "),
			"이미지성분: " + strings.Join(data.Ingredients, " "),
			"이미지섭취방법: " + data.Dosage,
			"이미지주의대상: " + strings.Join(data.Cautions, " "),
			"이미지상호작용: " + strings.Join(data.Interactions, " "),
		}, "\n"))
	}
	return strings.Join(blocks, "\n")
}

// BuildDocumentText renders the embedded document for one catalog point.
func BuildDocumentText(payload store.ProductPayload) string {
	price := ""
	if payload.Price != nil {
		price = strconv.FormatFloat(*payload.Price, 'f', -1, 64)
	}

	return strings.TrimSpace(strings.Join([]string{
		"상품명: " + payload.Name,
		"브랜드: " + payload.Brand,
		"카테고리: " + payload.Category,
		"가격: " + price,
		"설명: " + payload.Description,
		"대표성분: " + payload.PrimaryIngredient,
		"효능요약: " + payload.EffectsSummary,
		"부수효능: " + strings.Join(payload.SecondaryBenefits, " "),
		"추천대상: " + strings.Join(payload.RecommendedFor, " "),
		"비추천대상: " + strings.Join(payload.NotRecommendedFor, " "),
		"주의사항: " + payload.Notes,
		"상세이미지텍스트: " + payload.DetailImageText,
	}, "\n"))
}

func mergeDistinct(existing, extra []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range append(append([]string{}, existing...), extra...) {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
