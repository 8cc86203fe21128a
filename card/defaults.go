package card

// DefaultCatalog returns the built-in campus crisis card set.
func DefaultCatalog() *Catalog {
	return &Catalog{Crises: defaultCrises(), Actions: defaultActions()}
}

func defaultCrises() []CrisisCard {
	return []CrisisCard{
		{
			Level:          1,
			Title:          "Academic Discrimination",
			DescForTeacher: "I notice a female student being rejected from advanced research opportunities.",
			DescForStudent: "Someone suggests I should focus on more important things due to my gender.",
			DescForGuard:   "An incident occurred in the research building that needs immediate attention.",
			Needs:          map[ResourceKind]int{ResourceSupport: 1, ResourcePolicy: 1},
			Tags:           []string{"Gender", "Academic"},
		},
		{
			Level:          2,
			Title:          "Sexual Harassment",
			DescForTeacher: "I received multiple reports about inappropriate comments during class discussions.",
			DescForStudent: "During group projects, I witnessed some behaviors that made me uncomfortable.",
			DescForGuard:   "The situation in the classroom is deteriorating.",
			Needs:          map[ResourceKind]int{ResourceSupport: 1, ResourcePolicy: 1},
			Tags:           []string{"Harassment"},
		},
		{
			Level:          2,
			Title:          "Power Dynamics",
			DescForTeacher: "A faculty member has been accused.",
			DescForStudent: "During private meetings, my advisor always tries to get too close to me.",
			DescForGuard:   "The office, why are people still here at midnight.",
			Needs:          map[ResourceKind]int{ResourceSupport: 1, ResourcePolicy: 1},
			Tags:           []string{"Harassment"},
		},
		{
			Level:          1,
			Title:          "Social Media Harassment",
			DescForTeacher: "Students report receiving inappropriate messages from classmates on social media.",
			DescForStudent: "I received uncomfortable private messages and comments on my social media.",
			DescForGuard:   "Online harassment incidents are increasing, need immediate attention.",
			Needs:          map[ResourceKind]int{ResourceSupport: 1, ResourcePolicy: 1},
			Tags:           []string{"Digital", "Harassment"},
		},
		{
			Level:          2,
			Title:          "Retaliation Concerns",
			DescForTeacher: "A student's academic performance has recently declined significantly.",
			DescForStudent: "After witnessing and reporting harassment, I'm worried if I can pass this course.",
			DescForGuard:   "A potential retaliation case has been discovered, needs immediate investigation.",
			Needs:          map[ResourceKind]int{ResourceSupport: 2, ResourcePolicy: 1},
			Tags:           []string{"Harassment"},
		},
		{
			Level:          2,
			Title:          "Unequal Resources",
			DescForTeacher: "I notice some students are consistently not allocated equipment.",
			DescForStudent: "My equipment request was placed last again.",
			DescForGuard:   "Resource allocation disputes in the lab need mediation.",
			Needs:          map[ResourceKind]int{ResourcePolicy: 1},
			Tags:           []string{"Gender"},
		},
		{
			Level:          1,
			Title:          "Gender Identity",
			DescForTeacher: "A male student in class seems to be called Anna.",
			DescForStudent: "You can't come into the men's bathroom, get out, they pushed me violently.",
			DescForGuard:   "There seems to be a violent incident in the school bathroom.",
			Needs:          map[ResourceKind]int{ResourceSupport: 1, ResourcePolicy: 1},
			Tags:           []string{"Identity"},
		},
		{
			Level:          2,
			Title:          "Publication Bias",
			DescForTeacher: "I notice missing authorship and citations in papers.",
			DescForStudent: "When can I publish my own paper?",
			DescForGuard:   "There seems to be someone in the teaching building?!",
			Needs:          map[ResourceKind]int{ResourceSupport: 1},
			Tags:           []string{"Academic"},
		},
		{
			Level:          2,
			Title:          "Cultural Sensitivity",
			DescForTeacher: "A student from a small country transferred in, their emails always have many abbreviations.",
			DescForStudent: "They say I smell strange, I feel excluded from group activities.",
			DescForGuard:   "The classroom, why is someone wearing so many layers in summer.",
			Needs:          map[ResourceKind]int{ResourceSupport: 1},
			Tags:           []string{"Cultural"},
		},
		{
			Level:          1,
			Title:          "Stalking Behavior",
			DescForTeacher: "A student reports being followed and monitored.",
			DescForStudent: "Everywhere I go, I always meet the same person.",
			DescForGuard:   "Why are students still in pairs on campus at midnight, they must be good friends.",
			Needs:          map[ResourceKind]int{ResourceSupport: 1, ResourcePolicy: 1},
			Tags:           []string{"Harassment"},
		},
		{
			Level:          1,
			Title:          "Consent Education",
			DescForTeacher: "I notice students lack understanding of consent in academic settings.",
			DescForStudent: "I'm not sure what behavior is appropriate.",
			DescForGuard:   "There's a dispute in the classroom that needs handling.",
			Needs:          map[ResourceKind]int{ResourceSupport: 1, ResourcePolicy: 1},
			Tags:           []string{"Harassment"},
		},
	}
}

func defaultActions() []ActionCard {
	return []ActionCard{
		// Teacher cards
		{Type: TypeTeacher, Title: "Gender Equity Policy", Effect: "Implement comprehensive gender equity policies", EffectType: ResourcePolicy, Tags: []string{"Gender", "Academic"}},
		{Type: TypeTeacher, Title: "Anti-Harassment Training", Effect: "Conduct mandatory anti-harassment training", EffectType: ResourcePolicy, Tags: []string{"Harassment"}},
		{Type: TypeTeacher, Title: "Power Dynamics Training", Effect: "Implement training on appropriate faculty-student boundaries", EffectType: ResourcePolicy, Tags: []string{"Harassment"}},
		{Type: TypeTeacher, Title: "Social Media Policy", Effect: "Establish guidelines for online interactions", EffectType: ResourcePolicy, Tags: []string{"Digital", "Harassment"}},
		{Type: TypeTeacher, Title: "Anti-Retaliation Policy", Effect: "Implement measures to prevent retaliation", EffectType: ResourcePolicy, Tags: []string{"Harassment"}},
		{Type: TypeTeacher, Title: "Academic Equity Review", Effect: "Review academic policies for equity", EffectType: ResourcePolicy, Tags: []string{"Academic"}},
		{Type: TypeTeacher, Title: "Inclusive Language Policy", Effect: "Implement inclusive language guidelines", EffectType: ResourcePolicy, Tags: []string{"Identity"}},
		{Type: TypeTeacher, Title: "Cultural Competency Training", Effect: "Provide cultural competency education", EffectType: ResourcePolicy, Tags: []string{"Cultural"}},
		{Type: TypeTeacher, Title: "Faculty Training", Effect: "Conduct faculty equity training", EffectType: ResourcePolicy, Tags: []string{TagGeneral}},
		{Type: TypeTeacher, Title: "Resource Allocation Policy", Effect: "Implement fair resource distribution", EffectType: ResourcePolicy, Tags: []string{"Gender"}},
		{Type: TypeTeacher, Title: "Inclusive Curriculum", Effect: "Develop inclusive curriculum guidelines", EffectType: ResourcePolicy, Tags: []string{"Cultural"}},
		{Type: TypeTeacher, Title: "Anonymous Reporting", Effect: "Establish anonymous reporting system", EffectType: ResourcePolicy, Tags: []string{"Academic"}},
		{Type: TypeTeacher, Title: "Classroom Conduct Policy", Effect: "Establish clear guidelines for classroom behavior", EffectType: ResourcePolicy, Tags: []string{"Harassment"}},
		{Type: TypeTeacher, Title: "Consent Education Program", Effect: "Implement comprehensive consent education", EffectType: ResourcePolicy, Tags: []string{"Harassment"}},
		{Type: TypeTeacher, Title: "Visitor Management Policy", Effect: "Establish guidelines for campus visitors", EffectType: ResourcePolicy, Tags: []string{"Harassment"}},
		// Student cards
		{Type: TypeStudent, Title: "Peer Support Network", Effect: "Establish peer support system", EffectType: ResourceSupport, Tags: []string{TagGeneral}},
		{Type: TypeStudent, Title: "Peer Support Hotline", Effect: "Establish confidential support system for victims", EffectType: ResourceSupport, Tags: []string{"Harassment"}},
		{Type: TypeStudent, Title: "Digital Safety Workshop", Effect: "Provide training on online safety and privacy", EffectType: ResourceSupport, Tags: []string{"Digital", "Harassment"}},
		{Type: TypeStudent, Title: "Advocacy Network", Effect: "Create student-led support network", EffectType: ResourceSupport, Tags: []string{"Harassment"}},
		{Type: TypeStudent, Title: "Student Advocacy", Effect: "Organize student advocacy group", EffectType: ResourceSupport, Tags: []string{TagGeneral}},
		{Type: TypeStudent, Title: "Cultural Exchange", Effect: "Promote cross-cultural understanding", EffectType: ResourceSupport, Tags: []string{"Cultural"}},
		{Type: TypeStudent, Title: "Inclusive Dialogue", Effect: "Facilitate open discussions", EffectType: ResourceSupport, Tags: []string{"Identity"}},
		{Type: TypeStudent, Title: "Academic Support", Effect: "Provide academic assistance", EffectType: ResourceSupport, Tags: []string{"Academic"}},
		{Type: TypeStudent, Title: "Cultural Awareness", Effect: "Promote cultural understanding", EffectType: ResourceSupport, Tags: []string{"Cultural"}},
		{Type: TypeStudent, Title: "Bystander Intervention Training", Effect: "Train students to safely intervene in harassment situations", EffectType: ResourceSupport, Tags: []string{"Harassment"}},
		{Type: TypeStudent, Title: "Safe Walk Program", Effect: "Establish campus escort service", EffectType: ResourceSupport, Tags: []string{"Harassment"}},
		{Type: TypeStudent, Title: "Consent Workshop", Effect: "Organize student-led consent education", EffectType: ResourceSupport, Tags: []string{"Harassment"}},
		// Guard cards
		{Type: TypeGuard, Title: "Safe Space Initiative", Effect: "Create designated safe spaces", EffectType: ResourceSupport, Tags: []string{TagGeneral}},
		{Type: TypeGuard, Title: "Investigation Protocol", Effect: "Implement thorough investigation procedures", EffectType: ResourceSupport, Tags: []string{"Harassment"}},
		{Type: TypeGuard, Title: "Digital Evidence Collection", Effect: "Establish procedures for handling digital evidence", EffectType: ResourceSupport, Tags: []string{"Digital", "Harassment"}},
		{Type: TypeGuard, Title: "Retaliation Prevention", Effect: "Monitor and prevent potential retaliation", EffectType: ResourceSupport, Tags: []string{"Harassment"}},
		{Type: TypeGuard, Title: "Campus Safety", Effect: "Enhance campus security measures", EffectType: ResourceSupport, Tags: []string{TagGeneral}},
		{Type: TypeGuard, Title: "Conflict Resolution", Effect: "Mediate conflicts effectively", EffectType: ResourceSupport, Tags: []string{"Harassment"}},
		{Type: TypeGuard, Title: "Digital Safety", Effect: "Monitor online harassment", EffectType: ResourceSupport, Tags: []string{"Digital"}},
		{Type: TypeGuard, Title: "Safe Reporting", Effect: "Ensure secure reporting process", EffectType: ResourceSupport, Tags: []string{"Identity"}},
		{Type: TypeGuard, Title: "Prevention Training", Effect: "Conduct prevention workshops", EffectType: ResourceSupport, Tags: []string{TagGeneral}},
		{Type: TypeGuard, Title: "Campus Access Control", Effect: "Implement visitor tracking system", EffectType: ResourceSupport, Tags: []string{"Harassment"}},
		{Type: TypeGuard, Title: "Stalking Prevention", Effect: "Establish stalking response protocol", EffectType: ResourceSupport, Tags: []string{"Harassment"}},
		{Type: TypeGuard, Title: "Environmental Assessment", Effect: "Conduct campus safety audit", EffectType: ResourceSupport, Tags: []string{"Harassment"}},
	}
}
