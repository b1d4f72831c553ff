package validation

// 请求体字段的规范名
const (
	FieldEmail     = "email"
	FieldName      = "name"
	FieldSecret    = "secret"
	FieldTitle     = "title"
	FieldBody      = "body"
	FieldPublished = "published"
	FieldAuthorID  = "authorId"
)

var (
	// AccountCreate 是创建账户的请求体模式。
	AccountCreate = Schema{
		Name: "account create",
		Fields: []Field{
			{Name: FieldEmail, Type: TypeString, Required: true, Constraints: []Constraint{Email()}},
			{Name: FieldName, Type: TypeString},
			{Name: FieldSecret, Aliases: []string{"password"}, Type: TypeString, Required: true, Constraints: []Constraint{MinLength(6)}},
		},
	}

	// AccountUpdate 是部分更新账户的请求体模式。
	AccountUpdate = Schema{
		Name: "account update",
		Fields: []Field{
			{Name: FieldName, Type: TypeString},
			{Name: FieldEmail, Type: TypeString, Constraints: []Constraint{Email()}},
		},
	}

	// PostCreate 是创建文章的请求体模式。
	PostCreate = Schema{
		Name: "post create",
		Fields: []Field{
			{Name: FieldTitle, Type: TypeString, Required: true, Constraints: []Constraint{MinLength(1)}},
			{Name: FieldBody, Aliases: []string{"content"}, Type: TypeString, Required: true, Constraints: []Constraint{MinLength(1)}},
			{Name: FieldPublished, Type: TypeBoolean},
			{Name: FieldAuthorID, Type: TypeInteger, Required: true, Constraints: []Constraint{Positive()}},
		},
	}

	// PostUpdate 是部分更新文章的请求体模式。
	PostUpdate = Schema{
		Name: "post update",
		Fields: []Field{
			{Name: FieldTitle, Type: TypeString, Constraints: []Constraint{MinLength(1)}},
			{Name: FieldBody, Aliases: []string{"content"}, Type: TypeString, Constraints: []Constraint{MinLength(1)}},
			{Name: FieldPublished, Type: TypeBoolean},
		},
	}
)
