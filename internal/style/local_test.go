package style

import "testing"

func intPtr(v int) *int { return &v }

func TestRewrite_Formalidade(t *testing.T) {
	formal := Rewrite("você tá indo pra casa ver a coisa", TypeFormalidade, Config{FormalityLevel: intPtr(90)})
	if want := "Vossa Senhoria está indo para casa analisar a elemento"; formal != want {
		t.Errorf("esperado %q, recebido %q", want, formal)
	}

	informal := Rewrite("Vossa Senhoria está apta para realizar", TypeFormalidade, Config{FormalityLevel: intPtr(10)})
	if want := "você tá apta pra fazer"; informal != want {
		t.Errorf("esperado %q, recebido %q", want, informal)
	}

	neutral := Rewrite("você tá aqui", TypeFormalidade, Config{})
	if neutral != "você tá aqui" {
		t.Errorf("nível neutro não deveria alterar o texto, recebido %q", neutral)
	}
}

func TestRewrite_AntonymsSwapInOnePass(t *testing.T) {
	got := Rewrite("grande e pequeno, fácil e difícil", TypeAntonimos, Config{})
	if want := "pequeno e grande, difícil e fácil"; got != want {
		t.Errorf("esperado %q, recebido %q", want, got)
	}
}

func TestRewrite_WholeWordsOnly(t *testing.T) {
	got := Rewrite("bomba grandeza problemas", TypeSinonimos, Config{})
	if got != "bomba grandeza problemas" {
		t.Errorf("substituição não deveria atingir partes de palavras, recebido %q", got)
	}

	got = Rewrite("um bom problema", TypeSinonimos, Config{})
	if want := "um excelente questão"; got != want {
		t.Errorf("esperado %q, recebido %q", want, got)
	}
}

func TestRewrite_Templates(t *testing.T) {
	cases := []struct {
		typ  Type
		cfg  Config
		want string
	}{
		{TypeArgumentativo, Config{ArgumentativeLevel: intPtr(80)}, "É fundamental compreender que a escola importa Portanto, torna-se evidente a necessidade de uma análise mais aprofundada desta questão."},
		{TypeArgumentativo, Config{ArgumentativeLevel: intPtr(20)}, "A escola importa Essa é apenas uma perspectiva possível sobre o assunto."},
		{TypeArgumentativo, Config{}, "Considerando que a escola importa, pode-se argumentar que esta questão merece atenção especial."},
		{TypeEstruturaCausal, Config{}, "A escola importa devido a questões fundamentais, uma vez que os dados demonstram a necessidade de análise aprofundada."},
		{TypeEstruturaComparativa, Config{}, "Assim como observamos em situações similares, também a escola importa, estabelecendo um paralelo importante."},
		{TypeEstruturaCondicional, Config{}, "Se considerarmos que a escola importa, então podemos concluir que esta análise é fundamental."},
		{TypeEstruturaOposicao, Config{}, "Embora existam perspectivas contrárias, a escola importa, evidenciando a complexidade da questão."},
	}

	for _, tc := range cases {
		if got := Rewrite("A escola importa", tc.typ, tc.cfg); got != tc.want {
			t.Errorf("%s: esperado %q, recebido %q", tc.typ, tc.want, got)
		}
	}
}
