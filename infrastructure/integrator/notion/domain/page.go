package notiondomain

// Page é uma linha de uma base do Notion
type Page struct {
	ID             string              `json:"id"`
	Archived       bool                `json:"archived"`
	CreatedTime    string              `json:"created_time"`
	LastEditedTime string              `json:"last_edited_time"`
	Properties     map[string]Property `json:"properties"`
}

// Property guarda o valor de uma propriedade. Só o campo correspondente a Type vem preenchido.
type Property struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Title       []RichText `json:"title,omitempty"`
	RichText    []RichText `json:"rich_text,omitempty"`
	Number      *float64   `json:"number,omitempty"`
	Select      *Option    `json:"select,omitempty"`
	MultiSelect []Option   `json:"multi_select,omitempty"`
	Status      *Option    `json:"status,omitempty"`
	Date        *DateValue `json:"date,omitempty"`
	URL         *string    `json:"url,omitempty"`
	Email       *string    `json:"email,omitempty"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	Checkbox    *bool      `json:"checkbox,omitempty"`
	People      []Person   `json:"people,omitempty"`
	Files       []File     `json:"files,omitempty"`
	Rollup      *Rollup    `json:"rollup,omitempty"`
	Relation    []Relation `json:"relation,omitempty"`
}

type RichText struct {
	PlainText string `json:"plain_text"`
}

type Option struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type DateValue struct {
	Start string  `json:"start"`
	End   *string `json:"end"`
}

type Person struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type File struct {
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	External *FileLink `json:"external,omitempty"`
	File     *FileLink `json:"file,omitempty"`
}

type FileLink struct {
	URL string `json:"url"`
}

type Rollup struct {
	Type   string   `json:"type"`
	Number *float64 `json:"number,omitempty"`
}

type Relation struct {
	ID string `json:"id"`
}
