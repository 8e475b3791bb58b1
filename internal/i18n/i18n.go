// Package i18n holds the site's display-language dictionaries. Language is
// picked early from the visitor's country cookie; pages fall back to
// English for anything unrecognized.
package i18n

import "strings"

// Lang is a supported display language.
type Lang string

const (
	LangEN Lang = "en"
	LangPT Lang = "pt"
)

// SupportedLangs lists all display languages.
var SupportedLangs = []Lang{LangEN, LangPT}

// Normalize maps an arbitrary language hint to a supported Lang.
func Normalize(input string) Lang {
	if strings.HasPrefix(strings.ToLower(input), "pt") {
		return LangPT
	}
	return LangEN
}

// FromCountry maps an ISO 3166-1 alpha-2 country code to a display
// language. Only Brazil switches away from English today.
func FromCountry(country string) Lang {
	if strings.EqualFold(country, "BR") {
		return LangPT
	}
	return LangEN
}

// Dict carries every user-facing string for one language.
type Dict struct {
	Nav struct {
		Blog    string
		Home    string
		Request string
	}
	Home struct {
		Title               string
		Intro               string
		Scope               string
		Items               []string
		SeeArticle          string
		ReadBlog            string
		ModalTitle          string
		ModalDesc           string
		Name                string
		Email               string
		Phone               string
		Industry            string
		Submit              string
		TOS                 string
		IndustryPlaceholder string
		Processing          string
		SuccessTitle        string
		SuccessDesc         string
		SuccessCta          string
		Industries          map[string]string
		CaseStudies         string
	}
	BlogIndex struct {
		Header string
		Sub    string
	}
	ArticleMeta struct {
		Blog            string
		Technical       string
		Referral        string
		Read            string
		Next            string
		RequestAnalysis string
	}
}

var dicts = map[Lang]*Dict{
	LangEN: newEnglish(),
	LangPT: newPortuguese(),
}

// Get returns the dictionary for lang, falling back to English.
func Get(lang Lang) *Dict {
	if d, ok := dicts[lang]; ok {
		return d
	}
	return dicts[LangEN]
}

func newEnglish() *Dict {
	d := &Dict{}
	d.Nav.Blog = "Blog"
	d.Nav.Home = "Home"
	d.Nav.Request = "Request Analysis"

	d.Home.Title = "Loyalty & Referral Programs: Technical Analysis and Program Design"
	d.Home.Intro = "We design and validate loyalty and referral mechanisms for businesses of all sizes. The objective is to increase repeat purchases, improve product attach rate, and maximize Customer Lifetime Value (CLV) with measurable, data-driven interventions."
	d.Home.Scope = "Scope"
	d.Home.Items = []string{
		"Diagnostic: baseline cohort analysis (visit frequency, ATV, churn, attach rate)",
		"Mechanics: points issuance/redemption, tiers, accrual velocity, reward economics",
		"Governance: liability accounting, breakage assumptions, abuse prevention",
		"Experimentation: A/B of earn multipliers, thresholds, and redemption friction",
		"Attribution: CLV delta modeling and ROI tracking",
	}
	d.Home.SeeArticle = "See related article:"
	d.Home.ReadBlog = "Read the Blog"
	d.Home.ModalTitle = "Request a Loyalty & Referral Program Analysis"
	d.Home.ModalDesc = "Provide your details to receive a structured assessment and a proposal tailored to your business."
	d.Home.Name = "Name"
	d.Home.Email = "Email"
	d.Home.Phone = "Phone"
	d.Home.Industry = "Industry"
	d.Home.Submit = "Request Analysis"
	d.Home.TOS = "By submitting, you agree to our Terms of Service and Privacy Policy."
	d.Home.IndustryPlaceholder = "Select your industry"
	d.Home.Processing = "Processing..."
	d.Home.SuccessTitle = "Request received"
	d.Home.SuccessDesc = "Thanks! We're redirecting you to schedule a free consultation now."
	d.Home.SuccessCta = "Go to scheduling"
	d.Home.Industries = map[string]string{
		"retail":                "Retail",
		"ecommerce":             "E-commerce",
		"hospitality":           "Hospitality",
		"health-wellness":       "Health & Wellness",
		"beauty-aesthetics":     "Beauty & Aesthetics",
		"fitness":               "Fitness",
		"food-beverage":         "Food & Beverage",
		"professional-services": "Professional Services",
		"saas":                  "SaaS / Software",
		"other":                 "Other",
	}
	d.Home.CaseStudies = "Case Studies"

	d.BlogIndex.Header = "Zuzz Technical Notes"
	d.BlogIndex.Sub = "Applied analysis on loyalty economics, program design, and CLV modeling."

	d.ArticleMeta.Blog = "Blog"
	d.ArticleMeta.Technical = "Technical Analysis"
	d.ArticleMeta.Referral = "Referral Analysis"
	d.ArticleMeta.Read = "min read"
	d.ArticleMeta.Next = "Next:"
	d.ArticleMeta.RequestAnalysis = "Request an analysis"
	return d
}

func newPortuguese() *Dict {
	d := &Dict{}
	d.Nav.Blog = "Blog"
	d.Nav.Home = "Início"
	d.Nav.Request = "Solicitar Análise"

	d.Home.Title = "Programas de Fidelidade e Indicação: Análise Técnica e Desenho do Programa"
	d.Home.Intro = "Desenhamos e validamos mecanismos de fidelidade e indicação para empresas de todos os portes. O objetivo é aumentar a recompra, melhorar a taxa de produtos agregados e maximizar o LTV (Valor do Tempo de Vida do Cliente) com intervenções mensuráveis e orientadas por dados."
	d.Home.Scope = "Escopo"
	d.Home.Items = []string{
		"Diagnóstico: análise de coortes (frequência de visita, ticket médio, churn, taxa de acoplamento)",
		"Mecânicas: emissão/resgate de pontos, níveis, velocidade de acúmulo, economia de recompensas",
		"Governança: contabilização de passivos, quebra (breakage), prevenção de abuso",
		"Experimentação: testes A/B de multiplicadores de ganho, thresholds e fricção de resgate",
		"Atribuição: modelagem do delta de LTV e acompanhamento de ROI",
	}
	d.Home.SeeArticle = "Leia também:"
	d.Home.ReadBlog = "Ler o Blog"
	d.Home.ModalTitle = "Solicite uma Análise de Programa de Fidelidade e Indicação"
	d.Home.ModalDesc = "Informe seus dados para receber um diagnóstico estruturado e uma proposta alinhada ao seu negócio."
	d.Home.Name = "Nome"
	d.Home.Email = "E-mail"
	d.Home.Phone = "Telefone"
	d.Home.Industry = "Setor"
	d.Home.Submit = "Solicitar Análise"
	d.Home.TOS = "Ao enviar, você concorda com nossos Termos de Uso e Política de Privacidade."
	d.Home.IndustryPlaceholder = "Selecione seu setor"
	d.Home.Processing = "Processando..."
	d.Home.SuccessTitle = "Solicitação recebida"
	d.Home.SuccessDesc = "Obrigado! Vamos redirecionar você para agendar uma consulta gratuita agora."
	d.Home.SuccessCta = "Ir para agendamento"
	d.Home.Industries = map[string]string{
		"retail":                "Varejo",
		"ecommerce":             "E-commerce",
		"hospitality":           "Hospitalidade",
		"health-wellness":       "Saúde e Bem-estar",
		"beauty-aesthetics":     "Beleza e Estética",
		"fitness":               "Fitness",
		"food-beverage":         "Alimentos e Bebidas",
		"professional-services": "Serviços Profissionais",
		"saas":                  "SaaS / Software",
		"other":                 "Outro",
	}
	d.Home.CaseStudies = "Estudos de caso"

	d.BlogIndex.Header = "Zuzz Notas Técnicas"
	d.BlogIndex.Sub = "Análises aplicadas sobre economia de fidelidade, desenho de programas e modelagem de LTV."

	d.ArticleMeta.Blog = "Blog"
	d.ArticleMeta.Technical = "Análise Técnica"
	d.ArticleMeta.Referral = "Análise de Indicação"
	d.ArticleMeta.Read = "min de leitura"
	d.ArticleMeta.Next = "Próximo:"
	d.ArticleMeta.RequestAnalysis = "Solicitar análise"
	return d
}
