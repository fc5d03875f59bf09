package recommend

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/career-advisor/internal/extract"
	"github.com/jonathan/career-advisor/internal/llm"
	"github.com/jonathan/career-advisor/internal/observability"
	"github.com/jonathan/career-advisor/internal/schemas"
	"github.com/jonathan/career-advisor/internal/types"
)

// Service sends prompts to a completion client and extracts records from the answers.
// Structured results are always either schema-conformant or degraded; the only
// errors returned are transport and prompt failures.
type Service struct {
	client     llm.Client
	printer    *observability.Printer
	extractors map[string]*extract.Extractor
}

// Option configures a Service.
type Option func(*Service)

// WithPrinter echoes prompts, completions and extraction outcomes to p.
func WithPrinter(p *observability.Printer) Option {
	return func(s *Service) { s.printer = p }
}

// NewService compiles the output schemas and binds them to their extraction chains.
func NewService(client llm.Client, opts ...Option) (*Service, error) {
	chains := map[string]*extract.Extractor{
		SchemaCourses:  extract.ForRecommendations(),
		SchemaSkills:   extract.ForRecommendations(),
		SchemaProjects: extract.ForProjects(),
		SchemaProfile:  extract.ForProfileData(),
	}

	s := &Service{client: client, extractors: make(map[string]*extract.Extractor, len(chains))}
	for key, schema := range Schemas() {
		compiled, err := schemas.Compile(schema.Name, schema.JSONSchema())
		if err != nil {
			return nil, fmt.Errorf("failed to compile %s schema: %w", key, err)
		}
		s.extractors[key] = chains[key].WithValidator(compiled)
	}

	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Extractor returns the extraction chain bound to a schema key.
func (s *Service) Extractor(key string) *extract.Extractor {
	return s.extractors[key]
}

// CoursePlan recommends courses for a questionnaire.
func (s *Service) CoursePlan(ctx context.Context, q types.CourseQuestionnaire) (extract.Result, error) {
	req, err := BuildCoursePlan(q)
	if err != nil {
		return extract.Result{}, err
	}
	return s.structured(ctx, req, SchemaCourses)
}

// SkillsCoursePath recommends a leveled course path for a skills profile.
func (s *Service) SkillsCoursePath(ctx context.Context, profile *types.SkillsProfile, targetField string) (extract.Result, error) {
	req, err := BuildSkillsCoursePath(profile, targetField)
	if err != nil {
		return extract.Result{}, err
	}
	return s.structured(ctx, req, SchemaSkills)
}

// ProjectPlan recommends portfolio projects that build on completed courses.
func (s *Service) ProjectPlan(ctx context.Context, courses []types.CompletedCourse, info types.CareerInfo) (extract.Result, error) {
	req, err := BuildProjectPlan(courses, info)
	if err != nil {
		return extract.Result{}, err
	}
	return s.structured(ctx, req, SchemaProjects)
}

// ExtractProfile pulls skills and experience out of a profile.
func (s *Service) ExtractProfile(ctx context.Context, profile *types.ProfileInput) (extract.Result, error) {
	s.printer.PrintProfileInput(profile)
	req, err := BuildProfileExtraction(profile)
	if err != nil {
		return extract.Result{}, err
	}
	return s.structured(ctx, req, SchemaProfile)
}

// JobSuggestions returns the model's free-text job suggestions.
func (s *Service) JobSuggestions(ctx context.Context, extracted extract.Record, targetIndustry string) (string, error) {
	req, err := BuildJobSuggestions(extracted, targetIndustry)
	if err != nil {
		return "", err
	}
	return s.freeText(ctx, req)
}

// LearningPath returns the model's free-text learning path for a chosen job.
func (s *Service) LearningPath(ctx context.Context, extracted extract.Record, jobChoice string) (string, error) {
	req, err := BuildLearningPath(extracted, jobChoice)
	if err != nil {
		return "", err
	}
	return s.freeText(ctx, req)
}

func (s *Service) structured(ctx context.Context, req llm.RequestEnvelope, key string) (extract.Result, error) {
	completion, err := s.complete(ctx, req)
	if err != nil {
		return extract.Result{}, err
	}

	result := s.extractors[key].Extract(completion.Content())
	s.printer.PrintExtraction(result)
	if result.Record.IsDegraded() {
		log.Printf("[RECOMMEND] %s answer could not be extracted", req.Expects())
	}
	return result, nil
}

func (s *Service) freeText(ctx context.Context, req llm.RequestEnvelope) (string, error) {
	completion, err := s.complete(ctx, req)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(completion.Content()), nil
}

func (s *Service) complete(ctx context.Context, req llm.RequestEnvelope) (llm.Completion, error) {
	s.printer.PrintRequest(req)
	completion, err := s.client.Complete(ctx, req)
	if err != nil {
		return llm.Completion{}, err
	}
	s.printer.PrintCompletion(completion)
	return completion, nil
}
