package summarizer

import "github.com/johnquangdev/meeting-summarizer/internal/domain/entities"

// DefaultLexicon returns the bundled Korean + English tables.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Title:       entities.DefaultSummaryTitle,
		Unassigned:  entities.OwnerUnassigned,
		Unspecified: entities.DueUnspecified,

		GoalKeywords: []string{
			"goal", "goals", "objective", "objectives", "purpose",
			"목표", "목적",
		},
		ScopeKeywords: []string{
			"scope", "in scope", "out of scope",
			"범위",
		},
		DecisionHeadings: []string{
			"decision", "decisions", "decided items",
			"결정 사항", "결정사항", "결정", "합의 사항", "합의사항",
		},
		ActionHeadings: []string{
			"action item", "action items", "action", "actions", "next step", "next steps",
			"todo", "to-do", "follow-up", "follow-ups", "follow up",
			"액션 아이템", "액션", "할 일", "할일", "후속 조치", "실행 항목",
		},
		RiskKeywords: []string{
			"risk", "risks", "issue", "issues", "concern", "concerns", "blocker", "blockers",
			"리스크", "위험", "이슈", "우려",
		},

		MarkerClosings: []string{
			"as follows", "it is", "we summarize", "summarized below", "listed below", "below",
			"다음과 같습니다", "아래와 같습니다", "정리합니다", "정리하겠습니다", "정리하면", "공유합니다",
		},
		LeadCopulas:   []string{"is", "are", "was", "were", "will be", "includes", "include"},
		LeadParticles: []string{"은", "는", "이", "가", "으로", "로"},
		LeadArticles:  []string{"the", "our", "main", "key"},

		DecisionKeywords: []string{
			"confirm", "confirmed", "confirms",
			"finalize", "finalized", "finalise", "finalised",
			"approve", "approved", "approves",
			"agree", "agreed", "agrees",
			"adopt", "adopted", "adopts",
			"conclude", "concluded", "decided",
			"확정", "결정", "승인", "합의", "채택", "결론",
		},
		DecisionBoilerplate: []string{
			"this concludes the decisions",
			"that concludes the decisions",
			"that is all for decisions",
			"이상 결정 사항입니다",
			"결정 사항은 이상입니다",
			"이상으로 결정 사항을 마칩니다",
		},

		ActionVerbs: []string{
			"prepare", "prepares", "prepared", "preparing",
			"proceed", "proceeds", "proceeding",
			"organize", "organizes", "organizing", "organise",
			"write", "writes", "writing",
			"share", "shares", "sharing",
			"confirm", "confirms", "confirming",
			"set up", "sets up", "setting up", "set-up",
			"configure", "configures", "configuring",
			"test", "tests", "testing",
			"deploy", "deploys", "deploying",
			"review", "reviews", "reviewing",
			"add", "adds", "adding",
			"send", "sends", "sending",
			"update", "updates", "updating",
			"draft", "drafts", "drafting",
			"schedule", "schedules", "scheduling",
			"follow up", "follows up", "following up",
		},
		ActionStems: []string{
			"준비", "진행", "정리", "작성", "공유", "확인", "설정", "테스트", "배포", "검토", "추가", "전달", "업데이트",
		},
		StemVerbSuffixes: []string{"하", "해", "할", "합", "했", "함"},
		IntentMarkers:    []string{"will", "ll", "shall", "should", "must", "to", "please", "let", "lets", "need", "needs", "gonna"},

		OwnerLabels: []string{"owner", "assignee", "assigned to", "담당자", "담당"},
		DueLabels:   []string{"due", "deadline", "due date", "기한", "마감", "마감일"},
		TaskLabels:  []string{"task", "todo", "할 일", "업무"},
		OwnerModals: []string{
			"will", "shall", "should", "must", "needs to", "need to", "has to", "is going to", "is to", "to",
		},
		SubjectParticles:  []string{"께서", "이", "가"},
		TopicParticles:    []string{"은", "는"},
		HonorificSuffixes: []string{"님", "씨"},
		NonOwners: []string{
			"we", "i", "you", "they", "he", "she", "it", "this", "that", "there", "everyone", "everybody",
			"someone", "somebody", "nobody", "all", "team", "the", "our", "who",
			"우리", "저희", "모두", "팀", "회의", "다음", "이번", "이것", "그것", "누가",
		},
		DueLeadWords:  []string{"due", "by", "until", "till", "before", "no later than", "on"},
		DueTrailWords: []string{"전까지", "이전까지", "까지", "전에"},
		NextWeekWords: []string{"next", "다음 주", "다음주", "차주"},
		RelativeDays: map[string]int{
			"today": 0, "tomorrow": 1, "day after tomorrow": 2,
			"오늘": 0, "내일": 1, "모레": 2,
		},
		Weekdays: map[string]int{
			"sunday": 0, "monday": 1, "tuesday": 2, "wednesday": 3, "thursday": 4, "friday": 5, "saturday": 6,
			"일요일": 0, "월요일": 1, "화요일": 2, "수요일": 3, "목요일": 4, "금요일": 5, "토요일": 6,
		},
		PoliteEndings: []string{
			"해 주시기 바랍니다", "해주시기 바랍니다", "하기로 하였습니다", "하기로 했습니다", "할 예정입니다",
			"부탁드립니다", "하겠습니다", "예정입니다", "해 주세요", "해주세요", "하기로 함", "할 예정",
			"드립니다", "합니다", "입니다", "하기",
			"thank you", "thanks", "please", "asap",
		},
		TaskLeadWords: []string{"please", "to", "also", "then"},

		Stopwords: []string{
			"a", "an", "the", "and", "or", "but", "if", "then", "so", "to", "of", "in", "on", "at", "by",
			"for", "with", "from", "as", "is", "are", "was", "were", "be", "been", "being", "it", "its",
			"this", "that", "these", "those", "we", "you", "he", "she", "they", "them", "our", "us",
			"your", "their", "will", "would", "should", "can", "could", "may", "might", "must", "shall",
			"do", "does", "did", "done", "have", "has", "had", "not", "no", "yes", "also", "about", "into",
			"than", "too", "very", "just", "all", "any", "some", "each", "more", "most", "other", "such",
			"only", "same", "there", "here", "when", "where", "which", "who", "what", "how", "why", "up",
			"out", "over", "after", "before", "again", "once", "let", "lets", "need", "needs", "going",
			"next", "last", "time", "nothing", "something", "anything", "else", "ll", "ve", "re",
			"meeting",
			"그리고", "그러나", "하지만", "또한", "및", "등", "이번", "다음", "관련", "대한", "대해", "위해",
			"있습니다", "합니다", "했습니다", "입니다", "하는", "하고", "있는", "없는", "것", "수", "더",
			"좀", "잘", "우리", "저희", "오늘", "회의", "그래서", "그럼", "이제",
		},
		TokenSuffixes: []string{
			"에서는", "으로는", "에서", "으로", "에게", "까지", "부터", "로", "은", "는", "이", "가", "을", "를",
			"의", "에", "와", "과", "도", "만",
		},

		Headings: Headings{
			KeyPoints:      "Key Discussion Points",
			Decisions:      "Confirmed Decisions",
			ActionItems:    "Action Items",
			Overall:        "Overall Summary",
			None:           "(none)",
			MainDiscussion: "Main Discussion",
			Other:          "Other",
			Goals:          "Goals",
			Scope:          "Scope",
			Risks:          "Risks",
			DecisionsTopic: "Decisions",
			ActionsTopic:   "Action Items",
		},
	}
}
