package rule

type CreateRuleDTO struct {
	Title       string `json:"rule_title"`
	Description string `json:"rule_description"`
}

func (d CreateRuleDTO) ToEntity() *Rule {
	return &Rule{
		Title:       d.Title,
		Description: d.Description,
	}
}

type RulesResponse struct {
	Rules []Rule `json:"rules"`
}
