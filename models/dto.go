package models

type CreateTexteRequest struct {
	Kind              string `json:"kind" binding:"required"`
	OfficialReference string `json:"official_reference" binding:"required,min=1,max=255"`
	Title             string `json:"title" binding:"required,min=1,max=500"`
	IssuingAuthority  string `json:"issuing_authority"`
	PublicationDate   string `json:"publication_date" binding:"required"`
}

type CreateArticleRequest struct {
	NumeroArticle     string `json:"numero_article" binding:"required,min=1,max=50"`
	OrdreAffichage    int    `json:"ordre_affichage"`
	TitreCourt        string `json:"titre_court"`
	IsIntroductory    bool   `json:"is_introductory"`
	CarriesObligation bool   `json:"carries_obligation"`
	Contenu           string `json:"contenu" binding:"required"`
}

type CreateVersionRequest struct {
	VersionLabel      string `json:"version_label"`
	Contenu           string `json:"contenu" binding:"required"`
	DateVersion       string `json:"date_version"`
	EffectiveFrom     string `json:"effective_from" binding:"required"`
	EffectiveTo       string `json:"effective_to"`
	ModificationType  string `json:"modification_type" binding:"omitempty,oneof=ajoute modifie abroge remplace insere"`
	AmendingTexteID   *uint  `json:"amending_texte_id"`
	AmendingArticleID *uint  `json:"amending_article_id"`
	Notes             string `json:"notes"`
}

// UpdateVersionRequest only touches label and notes; content and the
// validity interval are append-only once a version exists.
type UpdateVersionRequest struct {
	VersionLabel string `json:"version_label"`
	Notes        string `json:"notes"`
}

type CreateEffectRequest struct {
	Kind              string `json:"kind" binding:"required,oneof=ABROGE AJOUTE"`
	SourceArticleID   uint   `json:"source_article_id" binding:"required"`
	TargetArticleID   *uint  `json:"target_article_id"`
	TargetTexteID     *uint  `json:"target_texte_id"`
	DateEffet         string `json:"date_effet" binding:"required"`
	DateFinEffet      string `json:"date_fin_effet"`
	ReferenceCitation string `json:"reference_citation"`
	Notes             string `json:"notes"`
}

type EndEffectRequest struct {
	DateFinEffet string `json:"date_fin_effet" binding:"required"`
}

type ReviewFaultRequest struct {
	Note string `json:"note"`
}

type TexteListParams struct {
	Status    string `form:"status"`
	Kind      string `form:"kind"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
	SortBy    string `form:"sort_by,default=publication_date"`
	SortOrder string `form:"sort_order,default=desc"`
}
