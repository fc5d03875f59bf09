// Package report renders recommendation records as terminal reports and saves them to disk.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonathan/career-advisor/internal/extract"
	"github.com/jonathan/career-advisor/internal/types"
)

const ruleWidth = 80

// Printer writes multi-section reports. Missing or mistyped keys render as empty.
type Printer struct {
	out   io.Writer
	title cases.Caser
}

// NewPrinter creates a Printer that writes to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, title: cases.Title(language.English)}
}

//nolint:errcheck // terminal output
func (p *Printer) printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

func (p *Printer) banner(title string) {
	p.printf("\n%s\n", strings.Repeat("=", ruleWidth))
	p.printf("%s%s\n", strings.Repeat(" ", 25), title)
	p.printf("%s\n\n", strings.Repeat("=", ruleWidth))
}

func (p *Printer) separator() {
	p.printf("\n%s\n\n", strings.Repeat("-", ruleWidth))
}

func (p *Printer) closing() {
	p.printf("\n%s\n", strings.Repeat("=", ruleWidth))
}

func (p *Printer) numbered(indent string, items []string) {
	for i, item := range items {
		p.printf("%s%d. %s\n", indent, i+1, item)
	}
}

// degraded prints the error and raw response of a record that could not be extracted.
// It reports whether the record was degraded.
func (p *Printer) degraded(r extract.Record, what string) bool {
	if !r.IsDegraded() {
		return false
	}
	p.printf("\n⚠️ Error generating %s:\n", what)
	p.printf("%s\n", r.ErrorMessage())
	if raw := r.RawResponse(); raw != "" {
		p.printf("\nRaw response:\n%s\n", raw)
	}
	return true
}

// number renders a numeric field without trailing zeros, falling back to its text.
func number(r extract.Record, key string) string {
	if f, ok := r.Float(key); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return r.String(key)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// CoursePlan prints a questionnaire course plan.
func (p *Printer) CoursePlan(r extract.Record) {
	if p.degraded(r, "recommendations") {
		return
	}

	p.banner("COURSE RECOMMENDATIONS")

	p.printf("🔍 NEEDS ANALYSIS:\n%s\n", r.String("needs_analysis"))
	p.separator()

	p.printf("📚 RECOMMENDED COURSES:\n")
	for i, course := range r.Records("recommended_courses") {
		p.printf("\n%d. %s\n", i+1, course.String("title"))
		p.printf("   Platform: %s\n", course.String("platform"))
		p.printf("   Level: %s\n", course.String("skill_level"))
		p.printf("   Duration: %s weeks\n", number(course, "duration_weeks"))
		p.printf("   Certification: %s\n", yesNo(course.Bool("certification")))
		p.printf("   Projects Included: %s\n", yesNo(course.Bool("includes_projects")))
		p.printf("   Description: %s\n", course.String("description"))
		p.printf("   Key Topics: %s\n", strings.Join(course.Strings("key_topics"), ", "))
	}
	p.separator()

	schedule := r.Record("learning_schedule")
	p.printf("📅 LEARNING SCHEDULE:\n")
	p.printf("   Recommended weekly time commitment: %s hours\n\n", number(schedule, "total_hours_weekly"))
	for _, week := range schedule.Records("weekly_breakdown") {
		p.printf("   Week %s: %s\n", number(week, "week"), week.String("focus"))
		p.printf("   Hours: %s\n", number(week, "hours_required"))
		p.printf("   Goals: %s\n\n", strings.Join(week.Strings("goals"), ", "))
	}
	p.printf("%s\n\n", strings.Repeat("-", ruleWidth))

	p.printf("🔗 ADDITIONAL RESOURCES:\n")
	for _, resource := range r.Records("additional_resources") {
		p.printf("   %s: %s\n", resource.String("type"), resource.String("name"))
		if url := resource.String("url"); url != "" {
			p.printf("   URL: %s\n", url)
		}
		p.printf("\n")
	}
	p.printf("%s\n\n", strings.Repeat("-", ruleWidth))

	p.printf("👣 NEXT STEPS:\n")
	p.numbered("   ", r.Strings("next_steps"))
	p.closing()
}

// SkillsCoursePath prints a leveled learning path for a skills profile.
func (p *Printer) SkillsCoursePath(r extract.Record) {
	if p.degraded(r, "recommendations") {
		return
	}

	p.banner("COURSE RECOMMENDATIONS")

	p.printf("🔍 SKILLS ASSESSMENT:\n%s\n", r.String("assessment"))
	p.separator()

	p.printf("🔍 IDENTIFIED SKILL GAPS:\n")
	p.numbered("   ", r.Strings("skill_gaps"))
	p.separator()

	p.printf("📚 RECOMMENDED LEARNING PATH:\n")
	for _, group := range r.Records("learning_path") {
		p.printf("\n[%s LEVEL COURSES]\n", strings.ToUpper(group.String("level")))
		for i, course := range group.Records("courses") {
			p.printf("\n%d. %s\n", i+1, course.String("title"))
			p.printf("   Platform: %s\n", course.String("platform"))
			p.printf("   Duration: %s\n", course.String("estimated_duration"))
			p.printf("   Description: %s\n", course.String("description"))
			p.printf("   Key Topics: %s\n", strings.Join(course.Strings("key_topics"), ", "))
		}
	}
	p.separator()

	p.printf("⏱️ ESTIMATED TIMELINE:\n%s\n", r.String("estimated_timeline"))
	p.separator()

	p.printf("🔗 RECOMMENDED LEARNING PLATFORMS:\n")
	for _, platform := range r.Strings("recommended_platforms") {
		p.printf("   • %s\n", platform)
	}
	p.separator()

	p.printf("👣 NEXT STEPS:\n")
	p.numbered("   ", r.Strings("next_steps"))
	p.closing()
}

// ProjectPlan prints portfolio project recommendations.
func (p *Printer) ProjectPlan(r extract.Record) {
	if p.degraded(r, "project recommendations") {
		return
	}

	p.banner("PROJECT RECOMMENDATIONS")

	p.printf("🚀 RECOMMENDED PROJECTS:\n")
	for i, project := range r.Records("recommended_projects") {
		p.printf("\n%d. %s\n", i+1, project.String("title"))
		p.printf("   Difficulty: %s\n", p.title.String(project.String("difficulty")))
		p.printf("   Estimated Time: %s\n", project.String("estimated_time"))
		p.printf("   Description: %s\n", project.String("description"))

		p.printf("\n   Skills Demonstrated:\n")
		p.numbered("     ", project.Strings("skills_demonstrated"))
		p.printf("\n   Key Features:\n")
		p.numbered("     ", project.Strings("key_features"))
		p.printf("\n   Portfolio Value: %s\n", project.String("portfolio_value"))
		p.printf("\n   Resources Needed:\n")
		p.numbered("     ", project.Strings("resources_needed"))
		p.printf("\n   Learning Outcomes:\n")
		p.numbered("     ", project.Strings("learning_outcomes"))
	}
	p.separator()

	p.printf("📈 LEARNING PROGRESSION:\n%s\n", r.String("learning_progression"))
	p.separator()

	p.printf("💡 PROJECT SELECTION TIPS:\n")
	p.numbered("   ", r.Strings("project_selection_tips"))

	if resources := r.Strings("additional_resources"); len(resources) > 0 {
		p.separator()
		p.printf("📚 ADDITIONAL RESOURCES:\n")
		p.numbered("   ", resources)
	}
	p.closing()
}

// ExtractedProfile prints the skills extracted from a profile as indented JSON,
// or the degraded view when extraction failed.
func (p *Printer) ExtractedProfile(r extract.Record) {
	if p.degraded(r, "profile data") {
		return
	}
	p.printf("\nExtracted Data:\n%s\n", r.JSON())
}

// SkillsSummary prints how many entries of each kind were collected.
func (p *Printer) SkillsSummary(profile *types.SkillsProfile) {
	if profile == nil {
		profile = types.NewSkillsProfile()
	}
	p.printf("\nSKILLS SUMMARY:\n")
	p.printf("Technical Skills: %d\n", len(profile.TechnicalSkills))
	p.printf("Soft Skills: %d\n", len(profile.SoftSkills))
	p.printf("Industry Knowledge: %d\n", len(profile.IndustryKnowledge))
}

// Text prints a titled block of free text.
func (p *Printer) Text(title, body string) {
	p.printf("\n===== %s =====\n%s\n", title, body)
}
