package ast

// Visitor is implemented by AST passes. Embed NoopVisitor to get default
// traversal and override only the nodes the pass cares about.
type Visitor interface {
	VisitProgram(node *Program)
	VisitExpression(node *Expression)
	VisitExpressions(node *Expressions)
	VisitStatement(node *Statement)
	VisitStatements(node *Statements)
	VisitBinding(node *VariableDeclarator)
	VisitParameterList(node *ParameterList)

	VisitIdentifier(node *Identifier)
	VisitStringLiteral(node *StringLiteral)
	VisitNumberLiteral(node *NumberLiteral)
	VisitBooleanLiteral(node *BooleanLiteral)
	VisitNullLiteral(node *NullLiteral)
	VisitThisExpression(node *ThisExpression)
	VisitFunctionLiteral(node *FunctionLiteral)
	VisitClassLiteral(node *ClassLiteral)
	VisitObjectLiteral(node *ObjectLiteral)
	VisitCallExpression(node *CallExpression)
	VisitDotExpression(node *DotExpression)
	VisitMemberExpression(node *MemberExpression)
	VisitAssignExpression(node *AssignExpression)
	VisitBinaryExpression(node *BinaryExpression)
	VisitUnaryExpression(node *UnaryExpression)
	VisitSequenceExpression(node *SequenceExpression)

	VisitBlockStatement(node *BlockStatement)
	VisitEmptyStatement(node *EmptyStatement)
	VisitExpressionStatement(node *ExpressionStatement)
	VisitIfStatement(node *IfStatement)
	VisitReturnStatement(node *ReturnStatement)
	VisitVariableDeclaration(node *VariableDeclaration)
	VisitFunctionDeclaration(node *FunctionDeclaration)
	VisitClassDeclaration(node *ClassDeclaration)

	VisitClassElements(node *ClassElements)
	VisitMethodDefinition(node *MethodDefinition)
	VisitFieldDefinition(node *FieldDefinition)
	VisitProperties(node *Properties)
	VisitPropertyKeyed(node *PropertyKeyed)
	VisitPropertyShort(node *PropertyShort)
}

// NoopVisitor visits every node without doing anything. V must be set to the
// outermost visitor so overridden methods are dispatched during traversal.
type NoopVisitor struct {
	V Visitor
}

func (nv *NoopVisitor) VisitProgram(n *Program)             { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitExpression(n *Expression)       { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitExpressions(n *Expressions)     { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStatement(n *Statement)         { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStatements(n *Statements)       { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBinding(n *VariableDeclarator)  { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitParameterList(n *ParameterList) { n.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitIdentifier(n *Identifier)                 { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStringLiteral(n *StringLiteral)           { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitNumberLiteral(n *NumberLiteral)           { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBooleanLiteral(n *BooleanLiteral)         { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitNullLiteral(n *NullLiteral)               { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitThisExpression(n *ThisExpression)         { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitFunctionLiteral(n *FunctionLiteral)       { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitClassLiteral(n *ClassLiteral)             { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitObjectLiteral(n *ObjectLiteral)           { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitCallExpression(n *CallExpression)         { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitDotExpression(n *DotExpression)           { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitMemberExpression(n *MemberExpression)     { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitAssignExpression(n *AssignExpression)     { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBinaryExpression(n *BinaryExpression)     { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitUnaryExpression(n *UnaryExpression)       { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitSequenceExpression(n *SequenceExpression) { n.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitBlockStatement(n *BlockStatement)           { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitEmptyStatement(n *EmptyStatement)           { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitExpressionStatement(n *ExpressionStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitIfStatement(n *IfStatement)                 { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitReturnStatement(n *ReturnStatement)         { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitVariableDeclaration(n *VariableDeclaration) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitFunctionDeclaration(n *FunctionDeclaration) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitClassDeclaration(n *ClassDeclaration)       { n.VisitChildrenWith(nv.V) }

func (nv *NoopVisitor) VisitClassElements(n *ClassElements)       { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitMethodDefinition(n *MethodDefinition) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitFieldDefinition(n *FieldDefinition)   { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitProperties(n *Properties)             { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitPropertyKeyed(n *PropertyKeyed)       { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitPropertyShort(n *PropertyShort)       { n.VisitChildrenWith(nv.V) }

func (n *Program) VisitWith(v Visitor) { v.VisitProgram(n) }
func (n *Program) VisitChildrenWith(v Visitor) {
	n.Body.VisitWith(v)
}

func (n *Expression) VisitWith(v Visitor) { v.VisitExpression(n) }
func (n *Expression) VisitChildrenWith(v Visitor) {
	if n.Expr != nil {
		n.Expr.VisitWith(v)
	}
}

func (n *Expressions) VisitWith(v Visitor) { v.VisitExpressions(n) }
func (n *Expressions) VisitChildrenWith(v Visitor) {
	for i := range *n {
		v.VisitExpression(&(*n)[i])
	}
}

func (n *Statement) VisitWith(v Visitor) { v.VisitStatement(n) }
func (n *Statement) VisitChildrenWith(v Visitor) {
	if n.Stmt != nil {
		n.Stmt.VisitWith(v)
	}
}

func (n *Statements) VisitWith(v Visitor) { v.VisitStatements(n) }
func (n *Statements) VisitChildrenWith(v Visitor) {
	for i := range *n {
		v.VisitStatement(&(*n)[i])
	}
}

func (n *VariableDeclarator) VisitWith(v Visitor) { v.VisitBinding(n) }
func (n *VariableDeclarator) VisitChildrenWith(v Visitor) {
	n.Target.VisitWith(v)
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
}

func (n *ParameterList) VisitWith(v Visitor) { v.VisitParameterList(n) }
func (n *ParameterList) VisitChildrenWith(v Visitor) {
	for i := range n.List {
		n.List[i].VisitWith(v)
	}
}

func (n *Identifier) VisitWith(v Visitor)             { v.VisitIdentifier(n) }
func (n *Identifier) VisitChildrenWith(v Visitor)     {}
func (n *StringLiteral) VisitWith(v Visitor)          { v.VisitStringLiteral(n) }
func (n *StringLiteral) VisitChildrenWith(v Visitor)  {}
func (n *NumberLiteral) VisitWith(v Visitor)          { v.VisitNumberLiteral(n) }
func (n *NumberLiteral) VisitChildrenWith(v Visitor)  {}
func (n *BooleanLiteral) VisitWith(v Visitor)         { v.VisitBooleanLiteral(n) }
func (n *BooleanLiteral) VisitChildrenWith(v Visitor) {}
func (n *NullLiteral) VisitWith(v Visitor)            { v.VisitNullLiteral(n) }
func (n *NullLiteral) VisitChildrenWith(v Visitor)    {}
func (n *ThisExpression) VisitWith(v Visitor)         { v.VisitThisExpression(n) }
func (n *ThisExpression) VisitChildrenWith(v Visitor) {}

func (n *FunctionLiteral) VisitWith(v Visitor) { v.VisitFunctionLiteral(n) }
func (n *FunctionLiteral) VisitChildrenWith(v Visitor) {
	if n.Name != nil {
		n.Name.VisitWith(v)
	}
	n.ParameterList.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ClassLiteral) VisitWith(v Visitor) { v.VisitClassLiteral(n) }
func (n *ClassLiteral) VisitChildrenWith(v Visitor) {
	n.Decorators.VisitWith(v)
	if n.Name != nil {
		n.Name.VisitWith(v)
	}
	if n.SuperClass != nil {
		n.SuperClass.VisitWith(v)
	}
	n.Body.VisitWith(v)
}

func (n *ObjectLiteral) VisitWith(v Visitor) { v.VisitObjectLiteral(n) }
func (n *ObjectLiteral) VisitChildrenWith(v Visitor) {
	n.Value.VisitWith(v)
}

func (n *CallExpression) VisitWith(v Visitor) { v.VisitCallExpression(n) }
func (n *CallExpression) VisitChildrenWith(v Visitor) {
	n.Callee.VisitWith(v)
	n.ArgumentList.VisitWith(v)
}

func (n *DotExpression) VisitWith(v Visitor) { v.VisitDotExpression(n) }
func (n *DotExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Identifier.VisitWith(v)
}

func (n *MemberExpression) VisitWith(v Visitor) { v.VisitMemberExpression(n) }
func (n *MemberExpression) VisitChildrenWith(v Visitor) {
	n.Object.VisitWith(v)
	n.Property.VisitWith(v)
}

func (n *AssignExpression) VisitWith(v Visitor) { v.VisitAssignExpression(n) }
func (n *AssignExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *BinaryExpression) VisitWith(v Visitor) { v.VisitBinaryExpression(n) }
func (n *BinaryExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *UnaryExpression) VisitWith(v Visitor) { v.VisitUnaryExpression(n) }
func (n *UnaryExpression) VisitChildrenWith(v Visitor) {
	n.Operand.VisitWith(v)
}

func (n *SequenceExpression) VisitWith(v Visitor) { v.VisitSequenceExpression(n) }
func (n *SequenceExpression) VisitChildrenWith(v Visitor) {
	n.Sequence.VisitWith(v)
}

func (n *BlockStatement) VisitWith(v Visitor) { v.VisitBlockStatement(n) }
func (n *BlockStatement) VisitChildrenWith(v Visitor) {
	n.List.VisitWith(v)
}

func (n *EmptyStatement) VisitWith(v Visitor)         { v.VisitEmptyStatement(n) }
func (n *EmptyStatement) VisitChildrenWith(v Visitor) {}

func (n *ExpressionStatement) VisitWith(v Visitor) { v.VisitExpressionStatement(n) }
func (n *ExpressionStatement) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *IfStatement) VisitWith(v Visitor) { v.VisitIfStatement(n) }
func (n *IfStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Consequent.VisitWith(v)
	if n.Alternate != nil {
		n.Alternate.VisitWith(v)
	}
}

func (n *ReturnStatement) VisitWith(v Visitor) { v.VisitReturnStatement(n) }
func (n *ReturnStatement) VisitChildrenWith(v Visitor) {
	if n.Argument != nil {
		n.Argument.VisitWith(v)
	}
}

func (n *VariableDeclaration) VisitWith(v Visitor) { v.VisitVariableDeclaration(n) }
func (n *VariableDeclaration) VisitChildrenWith(v Visitor) {
	for i := range n.List {
		n.List[i].VisitWith(v)
	}
}

func (n *FunctionDeclaration) VisitWith(v Visitor) { v.VisitFunctionDeclaration(n) }
func (n *FunctionDeclaration) VisitChildrenWith(v Visitor) {
	n.Function.VisitWith(v)
}

func (n *ClassDeclaration) VisitWith(v Visitor) { v.VisitClassDeclaration(n) }
func (n *ClassDeclaration) VisitChildrenWith(v Visitor) {
	n.Class.VisitWith(v)
}

func (n *ClassElements) VisitWith(v Visitor) { v.VisitClassElements(n) }
func (n *ClassElements) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].Element.VisitWith(v)
	}
}

func (n *MethodDefinition) VisitWith(v Visitor) { v.VisitMethodDefinition(n) }
func (n *MethodDefinition) VisitChildrenWith(v Visitor) {
	n.Decorators.VisitWith(v)
	n.Key.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *FieldDefinition) VisitWith(v Visitor) { v.VisitFieldDefinition(n) }
func (n *FieldDefinition) VisitChildrenWith(v Visitor) {
	n.Decorators.VisitWith(v)
	n.Key.VisitWith(v)
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
}

func (n *Properties) VisitWith(v Visitor) { v.VisitProperties(n) }
func (n *Properties) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].Prop.VisitWith(v)
	}
}

func (n *PropertyKeyed) VisitWith(v Visitor) { v.VisitPropertyKeyed(n) }
func (n *PropertyKeyed) VisitChildrenWith(v Visitor) {
	n.Decorators.VisitWith(v)
	n.Key.VisitWith(v)
	n.Value.VisitWith(v)
}

func (n *PropertyShort) VisitWith(v Visitor) { v.VisitPropertyShort(n) }
func (n *PropertyShort) VisitChildrenWith(v Visitor) {
	n.Decorators.VisitWith(v)
	n.Name.VisitWith(v)
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
}
