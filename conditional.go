package jsonschema

import "strings"

// ifKeywordClass implements "if"/"then"/"else": if the instance validates
// against "if", it must also validate against "then" (when present);
// otherwise it must validate against "else" (when present). "then" and
// "else" produce no result of their own outside of this evaluation, since
// whether they apply depends on "if"'s outcome.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-if-then-and-else
var ifKeywordClass = &KeywordClass{
	Name:       "if",
	Applicator: true,
	Evaluate: func(ck *CompiledKeyword, scope *ResultScope, dyn *dynamicScope) {
		ifBranch := evaluateSchema(ck.Single, scope.Instance, scope.EvaluationPath, absoluteLocation(ck.Single, ""), dyn)
		ifBranch.Parent = scope
		ifBranch.Keyword = "if"
		scope.Children = append(scope.Children, ifBranch)

		var branchKeyword string
		var branchCK *CompiledKeyword
		var ok bool
		if ifBranch.State == StatePassed {
			branchKeyword = "then"
			branchCK, ok = ck.Schema.Keyword("then")
		} else {
			branchKeyword = "else"
			branchCK, ok = ck.Schema.Keyword("else")
		}

		if !ok {
			scope.Pass()
			return
		}

		siblingPath := strings.TrimSuffix(scope.EvaluationPath, "/if") + "/" + branchKeyword
		branch := evaluateSchema(branchCK.Single, scope.Instance, siblingPath, absoluteLocation(branchCK.Single, ""), dyn)
		branch.Parent = scope
		branch.Keyword = branchKeyword
		scope.Children = append(scope.Children, branch)

		if branch.State != StatePassed {
			code := "if_then_mismatch"
			msg := "value meets the \"if\" condition but does not match the \"then\" schema"
			if branchKeyword == "else" {
				code = "if_else_mismatch"
				msg = "value fails the \"if\" condition and does not match the \"else\" schema"
			}
			scope.Fail(code, msg, nil)
			return
		}
		scope.Pass()
	},
}

// thenKeywordClass and elseKeywordClass are compiled but never evaluated
// directly; ifKeywordClass.Evaluate drives them.
var thenKeywordClass = &KeywordClass{Name: "then", Applicator: true, Static: true}
var elseKeywordClass = &KeywordClass{Name: "else", Applicator: true, Static: true}

func init() {
	ifKeywordClass.Build = buildSingleApplicator(ifKeywordClass)
	thenKeywordClass.Build = buildSingleApplicator(thenKeywordClass)
	elseKeywordClass.Build = buildSingleApplicator(elseKeywordClass)
}
