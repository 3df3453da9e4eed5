// Package preset ships the built-in agent and chain definitions merged
// additively at bootstrap, plus manifest sources for importing further
// presets from a bundled or remote document. Presets never clobber an
// existing same-id record; the registry owns that merge policy.
package preset

import "github.com/hupe1980/agentchain/core"

// Built-in agent ids.
const (
	ResearcherID = "researcher-v1"
	PlannerID    = "planner-v1"
	WriterID     = "writer-v1"
	ReviewerID   = "reviewer-v1"
	ArchitectID  = "architect-v1"
	CriticID     = "critic-v1"
)

// Built-in chain ids.
const (
	ContentCreationChainID = "content-creation-v1"
	ResearchReviewChainID  = "research-review-v1"
	DesignDebateChainID    = "design-debate-v1"
)

// Agents returns the built-in preset agents. The slice is freshly allocated
// on every call; callers may mutate it freely.
func Agents() []core.Agent {
	return []core.Agent{
		{
			ID:          ResearcherID,
			Name:        "Research Specialist",
			Description: "Thoroughly researches a topic and synthesizes findings",
			Role:        core.RoleResearcher,
			SystemPrompt: "You are a Research Specialist.\n" +
				"Your goal is to thoroughly research the user's topic.\n" +
				"1. Plan your research: break the topic into sub-questions.\n" +
				"2. Analyze what you know and synthesize the information.\n" +
				"3. Produce a comprehensive markdown report citing your sources where known.\n" +
				"Be factual. If you are unsure about something, say so.",
			Version: "1.0.0",
		},
		{
			ID:          PlannerID,
			Name:        "Strategic Planner",
			Description: "Turns research material into an actionable plan",
			Role:        core.RolePlanner,
			SystemPrompt: "You are a Strategic Planner.\n" +
				"Given research material and a task, produce a structured plan:\n" +
				"clear sections, ordered steps, and the rationale for each step.\n" +
				"Keep the plan concrete enough that a writer can execute it without\n" +
				"further questions.",
			Version: "1.0.0",
		},
		{
			ID:          WriterID,
			Name:        "Content Writer",
			Description: "Produces polished long-form content from a plan",
			Role:        core.RoleWriter,
			SystemPrompt: "You are a Content Writer.\n" +
				"Follow the provided plan and produce polished, well-structured\n" +
				"markdown content. Preserve the plan's section order. Write for a\n" +
				"technical audience; avoid filler.",
			Version: "1.0.0",
		},
		{
			ID:          ReviewerID,
			Name:        "Quality Reviewer",
			Description: "Reviews content for accuracy, clarity and completeness",
			Role:        core.RoleReviewer,
			SystemPrompt: "You are a Quality Reviewer.\n" +
				"Review the provided content against the original task. Point out\n" +
				"factual problems, unclear passages and missing pieces, then provide\n" +
				"a corrected final version.",
			Version: "1.0.0",
		},
		{
			ID:          ArchitectID,
			Name:        "The Architect",
			Description: "Designs robust, scalable, innovative solutions",
			Role:        core.RoleArchitect,
			SystemPrompt: "You are The Architect.\n" +
				"Your goal is to design robust, scalable, and innovative solutions.\n" +
				"When presented with a topic, propose a high-level technical design.\n" +
				"When critiqued, refine your design to address the concerns while\n" +
				"maintaining the core vision. Be concise but specific.",
			Version: "1.0.0",
		},
		{
			ID:          CriticID,
			Name:        "The Critic",
			Description: "Finds flaws, security risks and performance bottlenecks",
			Role:        core.RoleCritic,
			SystemPrompt: "You are The Critic.\n" +
				"Your goal is to find flaws, security risks, and performance\n" +
				"bottlenecks. Review proposals with extreme scrutiny. Point out edge\n" +
				"cases, race conditions, and scalability issues. Be constructive but\n" +
				"ruthless.",
			Version: "1.0.0",
		},
	}
}

// Chains returns the built-in chain definitions registered additively by
// InitializeCommonChains. Steps carry no explicit input mapping: each step
// consumes its predecessor's output by default.
func Chains() []core.Chain {
	return []core.Chain{
		{
			ID:          ContentCreationChainID,
			Name:        "Content Creation Pipeline",
			Description: "Full pipeline: Research → Plan → Write → Review",
			Steps: []core.ChainStep{
				{AgentID: ResearcherID},
				{AgentID: PlannerID},
				{AgentID: WriterID},
				{AgentID: ReviewerID},
			},
		},
		{
			ID:          ResearchReviewChainID,
			Name:        "Research with Review",
			Description: "Research with quality review",
			Steps: []core.ChainStep{
				{AgentID: ResearcherID},
				{AgentID: ReviewerID},
			},
		},
		{
			ID:          DesignDebateChainID,
			Name:        "Design Debate",
			Description: "Architect proposes, Critic reviews",
			Steps: []core.ChainStep{
				{AgentID: ArchitectID},
				{AgentID: CriticID},
			},
		},
	}
}
